// Package input reads tool inputs from JSON or YAML files.
package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedExtension = errors.New("unsupported input file extension")

// LoadFile decodes path into v, choosing JSON or YAML by extension. A path
// of "-" reads YAML (which also accepts JSON) from stdin.
func LoadFile(path string, v interface{}) error {
	if path == "-" {
		return Decode(os.Stdin, ".yaml", v)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Decode(f, filepath.Ext(path), v)
}

// Decode reads r as the format implied by ext (".json", ".yaml" or ".yml").
func Decode(r io.Reader, ext string, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	return nil
}
