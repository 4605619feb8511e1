package spectral

import (
	"context"
	"errors"
	"slices"

	"github.com/openapi-jsonapi/jsonapi-lint/document"
	lintErrors "github.com/openapi-jsonapi/jsonapi-lint/errors"
	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/openapi-jsonapi/jsonapi-lint/linter"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Rule is a compiled Definition. It is immutable and safe for concurrent use.
type Rule struct {
	def       Definition
	selectors []*document.Selector
	checks    []check
}

var (
	_ linter.RuleRunner[*document.Document] = (*Rule)(nil)
	_ linter.DocumentedRule                 = (*Rule)(nil)
	_ linter.DeclarativeRule                = (*Rule)(nil)
)

type check struct {
	then     Then
	field    field
	prepared functions.Prepared
}

// Compile validates a definition and prepares its functions. Every problem
// found is reported, not just the first.
func Compile(def Definition, registry *functions.Registry) (*Rule, error) {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, lintErrors.ErrInvalidRule.Wrapf("%s: "+format, append([]any{def.ID}, args...)...))
	}

	if def.ID == "" {
		invalid("missing id")
	}
	if len(def.Given) == 0 {
		invalid("no given selectors")
	}
	if len(def.Then) == 0 {
		invalid("no then checks")
	}
	for _, f := range def.Formats {
		if _, ok := formatVersions[f]; !ok {
			invalid("unknown format %q", f)
		}
	}

	r := &Rule{def: def}
	r.def.Given = slices.Clone(def.Given)
	r.def.Then = slices.Clone(def.Then)
	r.def.Formats = slices.Clone(def.Formats)

	for _, given := range def.Given {
		sel, err := document.Compile(given)
		if err != nil {
			invalid("given: %w", err)
			continue
		}
		r.selectors = append(r.selectors, sel)
	}

	for i, then := range def.Then {
		f, err := compileField(then.Field)
		if err != nil {
			invalid("then[%d]: %w", i, err)
			continue
		}

		fn, ok := registry.Get(then.Function)
		if !ok {
			errs = multierr.Append(errs, lintErrors.ErrUnknownFunction.Wrapf("%s: then[%d]: %q", def.ID, i, then.Function))
			continue
		}
		prepared, err := fn.Prepare(then.FunctionOptions)
		if err != nil {
			invalid("then[%d]: %w", i, err)
			continue
		}

		r.checks = append(r.checks, check{then: then, field: f, prepared: prepared})
	}

	if errs != nil {
		return nil, errs
	}
	return r, nil
}

// MustCompile is Compile but panics on error. It is meant for built-in rules.
func MustCompile(def Definition, registry *functions.Registry) *Rule {
	r, err := Compile(def, registry)
	if err != nil {
		panic(err)
	}
	return r
}

// Definition returns a copy of the rule's definition.
func (r *Rule) Definition() Definition {
	def := r.def
	def.Given = slices.Clone(r.def.Given)
	def.Then = slices.Clone(r.def.Then)
	def.Formats = slices.Clone(r.def.Formats)
	return def
}

func (r *Rule) ID() string                           { return r.def.ID }
func (r *Rule) Category() string                     { return r.def.Category }
func (r *Rule) Description() string                  { return r.def.Description }
func (r *Rule) Link() string                         { return r.def.Link }
func (r *Rule) DefaultSeverity() validation.Severity { return r.def.Severity }
func (r *Rule) Versions() []string                   { return Versions(r.def.Formats) }
func (r *Rule) GoodExample() string                  { return r.def.GoodExample }
func (r *Rule) BadExample() string                   { return r.def.BadExample }
func (r *Rule) Rationale() string                    { return r.def.Rationale }
func (r *Rule) Given() []string                      { return slices.Clone(r.def.Given) }

func (r *Rule) Summary() string {
	if r.def.Summary != "" {
		return r.def.Summary
	}
	return r.def.Description
}

func (r *Rule) Functions() []string {
	var names []string
	for _, t := range r.def.Then {
		if !slices.Contains(names, t.Function) {
			names = append(names, t.Function)
		}
	}
	return names
}

// target is a value handed to a function, with the path findings default to
// and the node they are reported at.
type target struct {
	node   *yaml.Node
	path   []string
	locate *yaml.Node
}

// Run evaluates the rule against a document.
func (r *Rule) Run(ctx context.Context, docInfo *linter.DocumentInfo[*document.Document], config *linter.RuleConfig) []error {
	doc := docInfo.Document
	if doc == nil {
		return nil
	}
	logger := config.GetLogger()

	if !doc.HasFormat(r.def.Formats...) {
		logger.Debugw("document format not targeted by rule", "rule", r.ID(), "formats", r.def.Formats)
		return nil
	}

	severity := config.GetSeverity(r.def.Severity)
	seen := make(map[string]struct{})
	var errs []error

	for _, sel := range r.selectors {
		matches := doc.Query(sel)
		logger.Debugw("selector evaluated", "rule", r.ID(), "given", sel.String(), "matches", len(matches))

		for _, m := range matches {
			if ctx.Err() != nil {
				return errs
			}

			for _, c := range r.checks {
				for _, t := range c.targets(doc, m) {
					fctx := &functions.Context{Path: t.path, Document: doc, Rule: r.ID()}

					for _, res := range c.prepared.Run(t.node, fctx) {
						path, node := t.path, t.locate
						if len(res.Path) > 0 {
							path = res.Path
							node = locate(doc, path)
						}

						template := r.def.Message
						if c.then.Message != "" {
							template = c.then.Message
						}
						msg := renderMessage(template, messageData{
							err:         res.Message,
							description: r.def.Description,
							path:        path,
							value:       t.node,
						})

						key := validation.JSONPointer(path) + "\x00" + msg
						if _, dup := seen[key]; dup {
							continue
						}
						seen[key] = struct{}{}

						vErr := validation.NewValidationError(severity, r.ID(), errors.New(msg), node).WithPath(slices.Clone(path))
						errs = append(errs, vErr)
					}
				}
			}
		}
	}

	return errs
}

func (c *check) targets(doc *document.Document, m document.Match) []target {
	switch c.field.kind {
	case fieldKeys:
		var targets []target
		for _, key := range yml.Keys(m.Node) {
			targets = append(targets, target{
				node:   key,
				path:   appendPath(m.Path, yml.ResolveAlias(key).Value),
				locate: key,
			})
		}
		return targets

	case fieldPath:
		path := appendPath(m.Path, c.field.segments...)
		node := document.Descend(m.Node, c.field.segments)
		locateAt := node
		if locateAt == nil {
			locateAt = nearest(m.Node, c.field.segments)
		}
		return []target{{node: node, path: path, locate: locateAt}}

	case fieldQuery:
		var targets []target
		for _, qm := range doc.QueryNode(c.field.selector, m.Node) {
			targets = append(targets, target{node: qm.Node, path: qm.Path, locate: qm.Node})
		}
		return targets

	default:
		return []target{{node: m.Node, path: m.Path, locate: m.Node}}
	}
}

func appendPath(base []string, segments ...string) []string {
	path := make([]string, 0, len(base)+len(segments))
	path = append(path, base...)
	return append(path, segments...)
}

// nearest returns the deepest existing node along segments from node.
func nearest(node *yaml.Node, segments []string) *yaml.Node {
	for i := len(segments) - 1; i >= 0; i-- {
		if n := document.Descend(node, segments[:i]); n != nil {
			return n
		}
	}
	return node
}

// locate finds the node for a document path, falling back to its deepest
// existing ancestor.
func locate(doc *document.Document, path []string) *yaml.Node {
	for i := len(path); i >= 0; i-- {
		if n := doc.NodeAt(path[:i]); n != nil {
			return n
		}
	}
	return doc.Root()
}
