package formatter

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/oakwood-commons/tq/pkg/document"
)

// renderTOML serializes a table root through the go-toml encoder. TOML
// has no document-level syntax for a bare scalar or array, so non-table
// roots are printed as TOML value literals instead, the way a scalar
// query result is shown on a terminal.
func renderTOML(v *document.Value, pretty bool) (string, error) {
	if v.Kind() != document.KindTable {
		return ensureTrailingNewline(tomlLiteral(v, pretty, 0)), nil
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if pretty {
		enc.SetIndentTables(true)
		enc.SetArraysMultiline(true)
	}
	if err := enc.Encode(v.Interface()); err != nil {
		return "", fmt.Errorf("encode TOML: %w", err)
	}
	return ensureTrailingNewline(buf.String()), nil
}

// tomlLiteral renders a value in TOML value syntax: quoted strings,
// bare numbers, inline arrays and inline tables.
func tomlLiteral(v *document.Value, pretty bool, depth int) string {
	switch v.Kind() {
	case document.KindString:
		return tomlQuote(v.AsString())
	case document.KindInteger:
		return strconv.FormatInt(v.AsInteger(), 10)
	case document.KindFloat:
		return tomlFloat(v.AsFloat())
	case document.KindBoolean:
		return strconv.FormatBool(v.AsBoolean())
	case document.KindDatetime:
		return document.FormatDatetime(v.AsDatetime())
	case document.KindArray:
		return tomlArrayLiteral(v, pretty, depth)
	case document.KindTable:
		return tomlInlineTable(v, depth)
	default:
		return ""
	}
}

func tomlArrayLiteral(v *document.Value, pretty bool, depth int) string {
	if v.Len() == 0 {
		return "[]"
	}
	elems := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		elems[i] = tomlLiteral(v.At(i), pretty, depth+1)
	}
	if !pretty {
		return "[" + strings.Join(elems, ", ") + "]"
	}
	indent := strings.Repeat("  ", depth+1)
	var b strings.Builder
	b.WriteString("[\n")
	for _, e := range elems {
		b.WriteString(indent)
		b.WriteString(e)
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("]")
	return b.String()
}

func tomlInlineTable(v *document.Value, depth int) string {
	if v.Len() == 0 {
		return "{}"
	}
	parts := make([]string, 0, v.Len())
	for _, k := range v.Keys() {
		entry, _ := v.Get(k)
		parts = append(parts, tomlKey(k)+" = "+tomlLiteral(entry, false, depth+1))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func tomlKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-') {
			return tomlQuote(k)
		}
	}
	return k
}

// tomlQuote renders a TOML basic string with the escapes the format
// defines; control characters outside that set use \u escapes.
func tomlQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func tomlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
