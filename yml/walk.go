package yml

import (
	"context"
	"strconv"

	"github.com/openapi-jsonapi/jsonapi-lint/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrTerminate can be returned from a VisitFunc to stop the walk without an error.
	ErrTerminate = errors.Error("terminate")
)

// VisitFunc is called for each node. path holds the mapping keys and
// sequence indexes leading to the node; key is the mapping key node when the
// node is a mapping value. path must not be retained without copying.
type VisitFunc func(ctx context.Context, node, key *yaml.Node, path []string) error

// Walk visits every value node below node depth first. Alias nodes are
// followed once; cycles through aliases are not revisited.
func Walk(ctx context.Context, node *yaml.Node, visit VisitFunc) error {
	w := walker{visit: visit, seen: make(map[*yaml.Node]bool)}
	err := w.walk(ctx, node, nil, make([]string, 0, 16))
	if err != nil {
		if errors.Is(err, ErrTerminate) {
			return nil
		}
		return err
	}
	return nil
}

type walker struct {
	visit VisitFunc
	seen  map[*yaml.Node]bool
}

func (w *walker) walk(ctx context.Context, node, key *yaml.Node, path []string) error {
	if node == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := w.walk(ctx, child, nil, path); err != nil {
				return err
			}
		}
		return nil
	case yaml.AliasNode:
		if w.seen[node] {
			return nil
		}
		w.seen[node] = true
		return w.walk(ctx, node.Alias, key, path)
	}

	if err := w.visit(ctx, node, key, path); err != nil {
		return err
	}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := node.Content[i]
			if err := w.walk(ctx, node.Content[i+1], k, append(path, ResolveAlias(k).Value)); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			if err := w.walk(ctx, child, nil, append(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	}

	return nil
}
