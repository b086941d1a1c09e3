package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"csv-serializer/internal/common"
	"csv-serializer/typedecl"
)

// UnmarshalYAML implements custom YAML unmarshaling for Declaration.
// The bare word null is the null type keyword; only an empty value or ~ leaves the member untyped.
func (d *Declaration) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if isAbsent(node) {
			d.Declaration = nil
			return nil
		}

		d.Declaration = typedecl.Parse(node.Value)

		return nil

	case yaml.SequenceNode:
		names := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected type name, got %v", item.Line, item.Kind)
			}

			if isAbsent(item) {
				continue
			}

			names = append(names, item.Value)
		}

		switch {
		case common.IsEmpty(names):
			d.Declaration = nil
		case common.IsSingle(names):
			d.Declaration = typedecl.Single{Name: names[0]}
		default:
			d.Declaration = typedecl.Union{Names: names}
		}

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// isAbsent reports whether a scalar carries no type name at all.
func isAbsent(node *yaml.Node) bool {
	value := strings.TrimSpace(node.Value)
	return value == "" || (value == "~" && node.Tag == "!!null")
}

// MarshalYAML implements custom YAML marshaling for Declaration.
// Declarations are written in their textual form.
func (d Declaration) MarshalYAML() (any, error) {
	if d.Declaration == nil {
		return nil, nil
	}

	return d.Declaration.String(), nil
}

// UnmarshalYAML decodes a member entry. A null-tagged type value is never handed to
// Declaration.UnmarshalYAML by the decoder, so the type node is decoded here once more.
func (m *MemberSpec) UnmarshalYAML(node *yaml.Node) error {
	type plain MemberSpec

	if err := node.Decode((*plain)(m)); err != nil {
		return err
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "type" {
			return m.Type.UnmarshalYAML(node.Content[i+1])
		}
	}

	return nil
}
