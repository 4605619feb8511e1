package document

import (
	"context"
	"slices"
	"strconv"

	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

func (d *Document) buildIndex(ctx context.Context) error {
	return yml.Walk(ctx, d.root, func(_ context.Context, node, key *yaml.Node, path []string) error {
		if _, ok := d.paths[node]; ok {
			return nil
		}
		p := slices.Clone(path)
		if p == nil {
			p = []string{}
		}
		d.paths[node] = p
		if key != nil {
			if _, ok := d.paths[key]; !ok {
				d.paths[key] = p
			}
		}
		return nil
	})
}

// PathOf returns the path of a node belonging to the document. Key nodes
// resolve to the path of their value.
func (d *Document) PathOf(node *yaml.Node) ([]string, bool) {
	if node == d.root {
		return []string{}, true
	}
	p, ok := d.paths[node]
	return p, ok
}

// NodeAt returns the node at path, or nil when the path does not exist.
func (d *Document) NodeAt(path []string) *yaml.Node {
	return Descend(d.Root(), path)
}

// Descend follows path from node through mapping keys and sequence indexes.
func Descend(node *yaml.Node, path []string) *yaml.Node {
	current := yml.Unwrap(node)
	for _, seg := range path {
		if current == nil {
			return nil
		}
		switch current.Kind {
		case yaml.MappingNode:
			current = yml.Unwrap(yml.GetMapValue(current, seg))
		case yaml.SequenceNode:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(current.Content) {
				return nil
			}
			current = yml.Unwrap(current.Content[i])
		default:
			return nil
		}
	}
	return current
}
