package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/tq/pkg/document"
)

// The document model mirrors the TOML value space, which has no null.
// Inputs carrying null values are rejected rather than silently dropped.
var errNullValue = errors.New("null values cannot be represented")

// decodeTOML parses TOML through go-toml. The decoder hands back plain
// maps, so TOML tables load with their keys in lexicographic order; this
// matches the sorted table storage of the original tool and keeps output
// deterministic.
func decodeTOML(data []byte) (*document.Value, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return fromTOMLValue(m)
}

func fromTOMLValue(v any) (*document.Value, error) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		tbl := document.NewTable()
		for _, k := range keys {
			entry, err := fromTOMLValue(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			tbl.Set(k, entry)
		}
		return tbl, nil
	case []any:
		arr := document.NewArray()
		for i, e := range t {
			elem, err := fromTOMLValue(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Append(elem)
		}
		return arr, nil
	case []map[string]any:
		// go-toml decodes [[array-of-tables]] into this shape.
		arr := document.NewArray()
		for i, e := range t {
			elem, err := fromTOMLValue(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Append(elem)
		}
		return arr, nil
	case string:
		return document.String(t), nil
	case int64:
		return document.Integer(t), nil
	case float64:
		return document.Float(t), nil
	case bool:
		return document.Boolean(t), nil
	case time.Time, toml.LocalDate, toml.LocalDateTime, toml.LocalTime:
		return document.Datetime(t), nil
	case nil:
		return nil, errNullValue
	default:
		return nil, fmt.Errorf("unsupported TOML value of type %T", v)
	}
}

// decodeJSON walks the token stream directly instead of unmarshaling
// into maps, so object member order survives into the document tree.
func decodeJSON(data []byte) (*document.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := readJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid JSON: trailing data after document")
	}
	return root, nil
}

func readJSONValue(dec *json.Decoder) (*document.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonValueFromToken(dec, tok)
}

func jsonValueFromToken(dec *json.Decoder, tok json.Token) (*document.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			tbl := document.NewTable()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				entry, err := readJSONValue(dec)
				if err != nil {
					return nil, fmt.Errorf("key %q: %w", key, err)
				}
				tbl.Set(key, entry)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return tbl, nil
		case '[':
			arr := document.NewArray()
			for dec.More() {
				elem, err := readJSONValue(dec)
				if err != nil {
					return nil, fmt.Errorf("index %d: %w", arr.Len(), err)
				}
				arr.Append(elem)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return document.String(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return document.Integer(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", t.String(), err)
		}
		return document.Float(f), nil
	case bool:
		return document.Boolean(t), nil
	case nil:
		return nil, errNullValue
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// decodeYAML parses into a yaml.Node tree rather than maps, preserving
// mapping order the same way the JSON path does.
func decodeYAML(data []byte) (*document.Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if node.Kind == 0 || len(node.Content) == 0 {
		return nil, fmt.Errorf("invalid YAML: empty document")
	}
	root, err := fromYAMLNode(node.Content[0])
	if err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return root, nil
}

func fromYAMLNode(n *yaml.Node) (*document.Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		tbl := document.NewTable()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				return nil, fmt.Errorf("line %d: mapping key: %w", keyNode.Line, err)
			}
			entry, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			tbl.Set(key, entry)
		}
		return tbl, nil
	case yaml.SequenceNode:
		arr := document.NewArray()
		for i, c := range n.Content {
			elem, err := fromYAMLNode(c)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Append(elem)
		}
		return arr, nil
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: unresolved alias", n.Line)
		}
		return fromYAMLNode(n.Alias)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func fromYAMLScalar(n *yaml.Node) (*document.Value, error) {
	switch n.Tag {
	case "!!str":
		return document.String(n.Value), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, fmt.Errorf("line %d: integer %q: %w", n.Line, n.Value, err)
		}
		return document.Integer(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: float %q: %w", n.Line, n.Value, err)
		}
		return document.Float(f), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: boolean %q: %w", n.Line, n.Value, err)
		}
		return document.Boolean(b), nil
	case "!!timestamp":
		var ts time.Time
		if err := n.Decode(&ts); err != nil {
			return nil, fmt.Errorf("line %d: timestamp %q: %w", n.Line, n.Value, err)
		}
		return document.Datetime(ts), nil
	case "!!null":
		return nil, errNullValue
	default:
		// Unrecognized tags carry their text form.
		return document.String(n.Value), nil
	}
}
