package descriptor

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a supported descriptor syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name. The empty string is
// accepted and means "detect from the file extension".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatTOML, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported descriptor format %q: must be 'toml' or 'yaml'", s)
	}
}

// FormatFromPath picks the format from the file extension. Anything that is
// not .yaml or .yml is read as TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
