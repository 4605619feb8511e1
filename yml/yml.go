// Package yml contains helpers for reading yaml.Node trees.
package yml

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// NodeKindToString returns a human-readable name for a yaml.Kind.
func NodeKindToString(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// ResolveAlias follows alias nodes to the node they point at.
func ResolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// Unwrap resolves aliases and steps into document nodes.
func Unwrap(node *yaml.Node) *yaml.Node {
	node = ResolveAlias(node)
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return Unwrap(node.Content[0])
	}
	return node
}

// GetMapElementNodes returns the key and value nodes for key in mapNode.
func GetMapElementNodes(mapNode *yaml.Node, key string) (*yaml.Node, *yaml.Node, bool) {
	mapNode = Unwrap(mapNode)
	if mapNode == nil || mapNode.Kind != yaml.MappingNode {
		return nil, nil, false
	}

	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		if keyNode.Value == key {
			return keyNode, mapNode.Content[i+1], true
		}
		if resolved := ResolveAlias(keyNode); resolved != nil && resolved.Value == key {
			return keyNode, mapNode.Content[i+1], true
		}
	}

	return nil, nil, false
}

// GetMapValue returns the value for key in mapNode, or nil.
func GetMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	_, value, _ := GetMapElementNodes(mapNode, key)
	return value
}

// Keys returns the key nodes of a mapping in document order.
func Keys(mapNode *yaml.Node) []*yaml.Node {
	mapNode = Unwrap(mapNode)
	if mapNode == nil || mapNode.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]*yaml.Node, 0, len(mapNode.Content)/2)
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		keys = append(keys, mapNode.Content[i])
	}
	return keys
}

// IsNull reports whether node is missing or an explicit null.
func IsNull(node *yaml.Node) bool {
	node = Unwrap(node)
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

// IsScalar reports whether node is a non-null scalar.
func IsScalar(node *yaml.Node) bool {
	node = Unwrap(node)
	return node != nil && node.Kind == yaml.ScalarNode && node.Tag != "!!null"
}

// IsString reports whether node is a string scalar.
func IsString(node *yaml.Node) bool {
	node = Unwrap(node)
	return node != nil && node.Kind == yaml.ScalarNode && (node.Tag == "!!str" || node.Tag == "")
}

// IsTruthy applies JavaScript truthiness: missing, null, false, 0 and ""
// are falsy; everything else, including empty objects and arrays, is truthy.
func IsTruthy(node *yaml.Node) bool {
	node = Unwrap(node)
	if node == nil {
		return false
	}
	if node.Kind != yaml.ScalarNode {
		return true
	}

	switch node.Tag {
	case "!!null":
		return false
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		return err != nil || b
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(strings.ReplaceAll(node.Value, "_", ""), 64)
		return err != nil || f != 0
	default:
		return node.Value != ""
	}
}

// Render formats node compactly for messages: scalars as their text and
// collections as JSON.
func Render(node *yaml.Node) string {
	node = Unwrap(node)
	if node == nil {
		return "undefined"
	}
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!null" {
			return "null"
		}
		return node.Value
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return NodeKindToString(node.Kind)
	}
	data, err := json.Marshal(normalize(v))
	if err != nil {
		return NodeKindToString(node.Kind)
	}
	return string(data)
}

// normalize converts map[any]any produced by non-string keys into JSON-encodable maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = normalize(vv)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[toString(k)] = normalize(vv)
		}
		return m
	case []any:
		for i, vv := range t {
			t[i] = normalize(vv)
		}
		return t
	default:
		return v
	}
}

func toString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.Trim(string(data), `"`)
}
