// Package jsonapilint lints OpenAPI documents against the JSON:API ruleset
// and any Spectral rulesets named in the configuration.
package jsonapilint

import (
	"context"
	"fmt"
	"slices"

	"github.com/openapi-jsonapi/jsonapi-lint/document"
	"github.com/openapi-jsonapi/jsonapi-lint/errors"
	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/openapi-jsonapi/jsonapi-lint/linter"
	"github.com/openapi-jsonapi/jsonapi-lint/rules"
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/openapi-jsonapi/jsonapi-lint/system"
	"go.uber.org/multierr"
)

// Linter is a JSON:API linter for OpenAPI documents.
type Linter struct {
	base     *linter.Linter[*document.Document]
	warnings []spectral.Warning
}

// Option is a functional option for configuring linter creation.
type Option func(*options)

type options struct {
	skipDefaultRules bool
	logger           linter.Logger
	fsys             system.VirtualFS
	functions        *functions.Registry
	concurrency      int
}

// WithoutDefaultRules creates a linter without the built-in JSON:API rules.
// Rules from custom rulesets are still loaded.
//
// Example:
//
//	l, err := NewLinter(config, WithoutDefaultRules())
//	l.Registry().Register(spectral.MustCompile(def, functions.Builtins()))
func WithoutDefaultRules() Option {
	return func(o *options) {
		o.skipDefaultRules = true
	}
}

// WithLogger sets the logger for the linter and its rules.
func WithLogger(logger linter.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFS sets the file system custom rulesets are read from. It defaults to
// the operating system.
func WithFS(fsys system.VirtualFS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithFunctions replaces the functions rules can reference.
func WithFunctions(fns *functions.Registry) Option {
	return func(o *options) {
		o.functions = fns
	}
}

// WithConcurrency bounds how many rules run at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// NewLinter creates a new JSON:API linter.
// By default the built-in ruleset is registered. Spectral rulesets listed in
// config.CustomRules.Paths are loaded and their severity overrides applied
// ahead of the rule entries of config, so config entries win.
//
// Returns an error if a ruleset can't be read or one of its rules fails to
// compile.
func NewLinter(config *linter.Config, opts ...Option) (*Linter, error) {
	o := &options{
		logger: linter.NopLogger(),
		fsys:   &system.FileSystem{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.functions == nil {
		o.functions = functions.Builtins()
	}
	if config == nil {
		config = linter.NewConfig()
	}

	registry := linter.NewRegistry[*document.Document]()

	if !o.skipDefaultRules {
		if err := rules.Register(registry, o.functions); err != nil {
			return nil, fmt.Errorf("registering built-in rules: %w", err)
		}
	}

	l := &Linter{}

	if config.CustomRules != nil && len(config.CustomRules.Paths) > 0 {
		effective, err := l.loadRulesets(config, registry, o)
		if err != nil {
			return nil, fmt.Errorf("loading custom rules: %w", err)
		}
		config = effective
	}

	l.base = linter.NewLinter(config, registry, linter.WithLogger(o.logger), linter.WithConcurrency(o.concurrency))
	return l, nil
}

// loadRulesets registers the rules of every configured ruleset and returns
// a copy of config carrying their extends and overrides.
func (l *Linter) loadRulesets(config *linter.Config, registry *linter.Registry[*document.Document], o *options) (*linter.Config, error) {
	files, err := system.Expand(o.fsys, config.CustomRules.Paths)
	if err != nil {
		return nil, fmt.Errorf("resolving ruleset files: %w", err)
	}

	effective := *config
	effective.Extends = slices.Clone(config.Extends)
	var overrides []linter.RuleEntry
	var errs error

	for _, file := range files {
		rs, err := spectral.ParseFile(o.fsys, file)
		if err != nil {
			return nil, err
		}

		for _, w := range rs.Warnings {
			o.logger.Warnw("ruleset warning", "file", file, "rule", w.RuleID, "message", w.Message)
		}
		l.warnings = append(l.warnings, rs.Warnings...)

		var recommended []string
		for _, def := range rs.Rules {
			rule, err := spectral.Compile(def, o.functions)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: rule %s: %w", file, def.ID, err))
				continue
			}
			registry.Register(rule)
			if def.Recommended {
				recommended = append(recommended, def.ID)
			}
			o.logger.Debugw("registered custom rule", "file", file, "rule", def.ID)
		}
		if err := registry.AddToRuleset(rules.RulesetRecommended, recommended...); err != nil {
			errs = multierr.Append(errs, err)
		}

		for _, ext := range rs.Extends {
			if _, ok := registry.GetRuleset(ext.Name); !ok {
				l.warn(o.logger, file, "", fmt.Sprintf("extends %q is not a known ruleset; ignored", ext.Name))
				continue
			}
			if !slices.Contains(effective.Extends, ext.Name) {
				effective.Extends = append(effective.Extends, ext.Name)
			}
		}

		for _, ov := range rs.Overrides {
			if _, ok := registry.GetRule(ov.ID); !ok {
				l.warn(o.logger, file, ov.ID, "override for unknown rule; ignored")
				continue
			}
			overrides = append(overrides, overrideEntry(ov))
		}
	}
	if errs != nil {
		return nil, errs
	}

	effective.Rules = append(overrides, config.Rules...)
	return &effective, nil
}

func (l *Linter) warn(logger linter.Logger, file, ruleID, msg string) {
	logger.Warnw("ruleset warning", "file", file, "rule", ruleID, "message", msg)
	l.warnings = append(l.warnings, spectral.Warning{RuleID: ruleID, Message: msg})
}

func overrideEntry(ov spectral.Override) linter.RuleEntry {
	disabled := ov.Disabled
	entry := linter.RuleEntry{ID: ov.ID, Disabled: &disabled}
	if !ov.Disabled && ov.Severity != nil {
		sev := *ov.Severity
		entry.Severity = &sev
	}
	return entry
}

// Registry returns the rule registry for documentation generation
func (l *Linter) Registry() *linter.Registry[*document.Document] {
	return l.base.Registry()
}

// Config returns the configuration in effect, including ruleset overrides.
func (l *Linter) Config() *linter.Config {
	return l.base.Config()
}

// Warnings returns the problems found while loading custom rulesets.
func (l *Linter) Warnings() []spectral.Warning {
	return slices.Clone(l.warnings)
}

// Lint runs all configured rules against the document.
// Rules are filtered by the document's OpenAPI version unless opts sets a
// version filter.
func (l *Linter) Lint(ctx context.Context, doc *document.Document, opts *linter.LintOptions) (*linter.Output, error) {
	if doc == nil {
		return nil, errors.ErrInvalidDocument.Wrapf("no document to lint")
	}

	if opts == nil {
		opts = &linter.LintOptions{}
	}
	if opts.VersionFilter == nil {
		version := doc.Version()
		opts.VersionFilter = &version
	}

	return l.base.Lint(ctx, linter.NewDocumentInfo(doc, doc.Location()), nil, opts)
}
