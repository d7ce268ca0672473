// Package formatter serializes an extracted document value back into
// TOML, JSON, or YAML text for display.
package formatter

import (
	"fmt"
	"strings"

	"github.com/oakwood-commons/tq/pkg/document"
)

// Output names a serialization syntax.
type Output string

const (
	OutputTOML Output = "toml"
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

// ParseOutput validates an output format name from user input.
func ParseOutput(s string) (Output, error) {
	switch Output(strings.ToLower(strings.TrimSpace(s))) {
	case OutputTOML:
		return OutputTOML, nil
	case OutputJSON:
		return OutputJSON, nil
	case OutputYAML:
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected toml, json, or yaml)", s)
	}
}

// Render serializes v in the requested syntax. The result always ends
// with a single newline. pretty selects indented tables and multiline
// arrays for TOML and indented output for JSON; YAML is block-styled
// either way.
func Render(v *document.Value, out Output, pretty bool) (string, error) {
	switch out {
	case OutputTOML:
		return renderTOML(v, pretty)
	case OutputJSON:
		return renderJSON(v, pretty)
	case OutputYAML:
		return renderYAML(v)
	default:
		return "", fmt.Errorf("unknown output format %q", out)
	}
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
