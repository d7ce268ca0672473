// Package loader decodes raw TOML, JSON, or YAML input into a document
// tree. The format is either stated explicitly by the caller or detected
// from the file extension and content heuristics.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/oakwood-commons/tq/pkg/document"
)

// Format names an input syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from user input.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatAuto:
		return FormatAuto, nil
	case FormatTOML:
		return FormatTOML, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown input format %q (expected toml, json, yaml, or auto)", s)
	}
}

// Decode parses data in the given format into a document tree. With
// FormatAuto the format is detected from the content.
func Decode(data []byte, format Format) (*document.Value, error) {
	if format == FormatAuto || format == "" {
		format = Detect(data)
	}
	switch format {
	case FormatTOML:
		return decodeTOML(data)
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// DecodeFile reads path and decodes it. With FormatAuto the file
// extension decides first; unknown extensions fall back to content
// detection.
func DecodeFile(path string, format Format) (*document.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if format == FormatAuto || format == "" {
		format = formatForExtension(path)
	}
	root, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return root, nil
}

func formatForExtension(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Section headers like [server] or [[items]], with bare, quoted, or
// dotted keys. JSON arrays like [1, 2] do not match.
var tomlSectionPattern = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)

// key = value assignments, which distinguish TOML from YAML's key: value.
var tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)

// Detect guesses the input format from content. TOML is checked before
// JSON because a [section] header also looks like the start of a JSON
// array; anything that is neither TOML-like nor JSON-like is treated as
// YAML, which accepts JSON-style documents anyway.
func Detect(data []byte) Format {
	s := strings.TrimSpace(string(data))
	if isLikelyTOML(s) {
		return FormatTOML
	}
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return FormatJSON
	}
	return FormatYAML
}

func isLikelyTOML(input string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++
		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}

	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}
