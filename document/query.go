package document

import (
	"slices"

	"github.com/openapi-jsonapi/jsonapi-lint/errors"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath/config"
	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

// Dialect identifies the JSONPath implementation a selector compiled with.
type Dialect string

const (
	// DialectRFC9535 is RFC 9535 JSONPath with the property name (~) extension.
	DialectRFC9535 Dialect = "rfc9535"
	// DialectLegacy is the yamlpath dialect, kept for rulesets written against
	// JSONPath implementations that predate the RFC.
	DialectLegacy Dialect = "legacy"
)

type queryable interface {
	query(root *yaml.Node) []*yaml.Node
}

type rfcQueryable struct {
	path *jsonpath.JSONPath
}

func (r rfcQueryable) query(root *yaml.Node) []*yaml.Node {
	return r.path.Query(root)
}

type legacyQueryable struct {
	path *yamlpath.Path
}

func (l legacyQueryable) query(root *yaml.Node) []*yaml.Node {
	// yamlpath only fails on malformed paths, which NewPath already rejected.
	nodes, _ := l.path.Find(root)
	return nodes
}

// Selector is a compiled JSONPath expression.
type Selector struct {
	expr    string
	dialect Dialect
	q       queryable
}

// Compile compiles expr as an RFC 9535 JSONPath, falling back to the legacy
// dialect when the RFC parser rejects it.
func Compile(expr string) (*Selector, error) {
	rfcPath, rfcErr := jsonpath.NewPath(expr, config.WithPropertyNameExtension())
	if rfcErr == nil {
		return &Selector{expr: expr, dialect: DialectRFC9535, q: rfcQueryable{path: rfcPath}}, nil
	}

	legacyPath, legacyErr := yamlpath.NewPath(expr)
	if legacyErr != nil {
		return nil, errors.ErrInvalidSelector.Wrapf("%q: %w", expr, rfcErr)
	}
	return &Selector{expr: expr, dialect: DialectLegacy, q: legacyQueryable{path: legacyPath}}, nil
}

// MustCompile is Compile but panics on error.
func MustCompile(expr string) *Selector {
	s, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Selector) String() string {
	return s.expr
}

func (s *Selector) Dialect() Dialect {
	return s.dialect
}

// Match is a node selected by a query together with its document path.
// Path is nil when the node was synthesized by the query (property names).
type Match struct {
	Node *yaml.Node
	Path []string
}

// Query evaluates the selector against the whole document.
func (d *Document) Query(s *Selector) []Match {
	nodes := s.q.query(d.root)

	matches := make([]Match, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Kind == yaml.DocumentNode {
			n = d.Root()
		}
		path, ok := d.PathOf(n)
		if !ok {
			path = nil
		}
		matches = append(matches, Match{Node: n, Path: slices.Clone(path)})
	}
	return matches
}

// QueryNode evaluates the selector with node as the root, for selectors that
// are relative to an already selected node.
func (d *Document) QueryNode(s *Selector, node *yaml.Node) []Match {
	if node == nil {
		return nil
	}
	nodes := s.q.query(node)

	matches := make([]Match, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		path, _ := d.PathOf(n)
		matches = append(matches, Match{Node: n, Path: slices.Clone(path)})
	}
	return matches
}
