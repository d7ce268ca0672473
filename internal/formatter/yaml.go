package formatter

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/tq/pkg/document"
)

// renderYAML builds a yaml.Node tree so mapping order survives; encoding
// plain maps would let the yaml package reorder keys.
func renderYAML(v *document.Value) (string, error) {
	node, err := yamlNode(v)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode YAML: %w", err)
	}
	return ensureTrailingNewline(buf.String()), nil
}

func yamlNode(v *document.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case document.KindTable:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range v.Keys() {
			entry, _ := v.Get(k)
			child, err := yamlNode(entry)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				child,
			)
		}
		return node, nil
	case document.KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := 0; i < v.Len(); i++ {
			child, err := yamlNode(v.At(i))
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case document.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.AsString()}, nil
	case document.KindInteger:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.AsInteger(), 10)}, nil
	case document.KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: tomlFloat(v.AsFloat())}, nil
	case document.KindBoolean:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.AsBoolean())}, nil
	case document.KindDatetime:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: document.FormatDatetime(v.AsDatetime())}, nil
	default:
		return nil, fmt.Errorf("cannot encode %s as YAML", v.Kind())
	}
}
