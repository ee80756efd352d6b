package problem

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/hillclimb/pkg/errors"
)

// ParseList splits a comma-separated line of labels and upper-cases each
// one. Surrounding whitespace is trimmed; empty entries are kept so that
// Validate can report them.
//
//	ParseList("a,b, c") // ["A", "B", "C"]
func ParseList(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = normalizeLabel(p)
	}
	return parts
}

// SplitEdge returns the two endpoints of an edge label. A label containing a
// dash is split on it ("N1-N2"); any other label must be exactly two
// characters, one per endpoint ("AB").
func SplitEdge(label string) (string, string, error) {
	if a, b, ok := strings.Cut(label, "-"); ok {
		if a == "" || b == "" || strings.Contains(b, "-") {
			return "", "", errors.New(errors.ErrCodeUnknownEdgeEndpoint, "malformed edge %q (want two labels joined by '-')", label)
		}
		return a, b, nil
	}
	if utf8.RuneCountInString(label) != 2 {
		return "", "", errors.New(errors.ErrCodeUnknownEdgeEndpoint, "malformed edge %q (want two node letters such as 'AB')", label)
	}
	first, size := utf8.DecodeRuneInString(label)
	return string(first), label[size:], nil
}

// ParseHeuristic parses an interactive heuristic entry. Only integers are
// accepted, matching the prompt; problem files may use fractional values.
func ParseHeuristic(s string) (float64, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidHeuristic, err, "heuristic value %q is not an integer", s)
	}
	if v < 0 {
		return 0, errors.New(errors.ErrCodeInvalidHeuristic, "heuristic value %d must be non-negative", v)
	}
	return float64(v), nil
}
