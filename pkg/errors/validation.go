package errors

import (
	"strings"
	"unicode"
)

// maxLabelLength bounds node labels. Labels end up in DOT sources and file
// names, so they are kept short.
const maxLabelLength = 64

// ValidateLabel validates a node label for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters or whitespace
//   - No commas or dashes (list and edge separators of the input formats)
//   - No double quotes or backslashes (they would break DOT quoting)
//   - Maximum length of 64 characters
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidInput, "node label cannot be empty")
	}

	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidInput, "node label too long (max %d characters)", maxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "node label %q contains whitespace or control characters", label)
		}
	}

	if strings.ContainsAny(label, ",-\"\\") {
		return New(ErrCodeInvalidInput, "node label %q contains invalid characters", label)
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}
