package document

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

// ToJSON writes node as JSON. Object keys keep their document order.
func ToJSON(node *yaml.Node, indentation int, w io.Writer) error {
	v, err := toOrdered(node)
	if err != nil {
		return err
	}

	e := json.NewEncoder(w)
	e.SetIndent("", strings.Repeat(" ", indentation))
	return e.Encode(v)
}

// ToValue converts node into plain Go values (map[string]any, []any,
// strings, numbers, bools and nil).
func ToValue(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	var v any
	if err := yml.Unwrap(node).Decode(&v); err != nil {
		return nil, err
	}
	return stringKeys(v)
}

func toOrdered(node *yaml.Node) (any, error) {
	node = yml.ResolveAlias(node)
	if node == nil {
		return nil, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return toOrdered(node.Content[0])
	case yaml.MappingNode:
		m := orderedMap{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := yml.ResolveAlias(node.Content[i])
			value, err := toOrdered(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = append(m, orderedEntry{key: key.Value, value: value})
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := toOrdered(child)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown node kind: %s", yml.NodeKindToString(node.Kind))
	}
}

type orderedEntry struct {
	key   string
	value any
}

type orderedMap []orderedEntry

func (m orderedMap) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, entry := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		k, err := json.Marshal(entry.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(entry.value)
		if err != nil {
			return nil, err
		}
		sb.Write(k)
		sb.WriteByte(':')
		sb.Write(v)
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}

func stringKeys(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			converted, err := stringKeys(vv)
			if err != nil {
				return nil, err
			}
			t[k] = converted
		}
		return t, nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			converted, err := stringKeys(vv)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprintf("%v", k)] = converted
		}
		return m, nil
	case []any:
		for i, vv := range t {
			converted, err := stringKeys(vv)
			if err != nil {
				return nil, err
			}
			t[i] = converted
		}
		return t, nil
	default:
		return v, nil
	}
}
