package problem

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hillclimb/pkg/errors"
)

// Supported problem file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// FormatFromPath infers the file format from the extension of path.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported problem file %q (want .json or .toml)", path)
	}
}

// Read decodes a problem in the given format and normalizes its labels.
// The result is not validated.
func Read(r io.Reader, format string) (Problem, error) {
	var p Problem
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&p); err != nil {
			return Problem{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
			return Problem{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml")
		}
	default:
		return Problem{}, errors.ValidateFormat(format, FormatJSON, FormatTOML)
	}
	return p.Normalize(), nil
}

// ReadFile reads a problem from a .json or .toml file.
func ReadFile(path string) (Problem, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Problem{}, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Problem{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "problem file %s", path)
	}
	if err != nil {
		return Problem{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}

// Write encodes p in the given format.
func Write(w io.Writer, p Problem, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(p); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	default:
		return errors.ValidateFormat(format, FormatJSON, FormatTOML)
	}
}

// WriteFile writes p to path, choosing the format from the extension.
func WriteFile(path string, p Problem) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, p, format)
}
