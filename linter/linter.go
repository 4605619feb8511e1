package linter

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"

	"github.com/openapi-jsonapi/jsonapi-lint/internal/version"
	"github.com/openapi-jsonapi/jsonapi-lint/linter/format"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"golang.org/x/sync/errgroup"
)

// Linter is the main linting engine
type Linter[T any] struct {
	config      *Config
	registry    *Registry[T]
	logger      Logger
	concurrency int
}

// Option configures a Linter.
type Option func(*settings)

type settings struct {
	logger      Logger
	concurrency int
}

// WithLogger sets the logger used by the engine and handed to rules.
func WithLogger(logger Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithConcurrency bounds how many rules run at once. Values below one use
// GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(s *settings) {
		s.concurrency = n
	}
}

// NewLinter creates a new linter with the given configuration
func NewLinter[T any](config *Config, registry *Registry[T], opts ...Option) *Linter[T] {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = NopLogger()
	}
	if s.concurrency < 1 {
		s.concurrency = runtime.GOMAXPROCS(0)
	}
	if config == nil {
		config = NewConfig()
	}

	return &Linter[T]{
		config:      config,
		registry:    registry,
		logger:      s.logger,
		concurrency: s.concurrency,
	}
}

// Registry returns the rule registry for documentation generation
func (l *Linter[T]) Registry() *Registry[T] {
	return l.registry
}

// Config returns the configuration the linter was created with
func (l *Linter[T]) Config() *Config {
	return l.config
}

// Lint runs all configured rules against the document
func (l *Linter[T]) Lint(ctx context.Context, docInfo *DocumentInfo[T], preExistingErrors []error, opts *LintOptions) (*Output, error) {
	var allErrs []error

	if len(preExistingErrors) > 0 {
		allErrs = append(allErrs, preExistingErrors...)
	}

	lintErrs, err := l.runRules(ctx, docInfo, opts)
	if err != nil {
		return nil, err
	}
	allErrs = append(allErrs, lintErrs...)

	allErrs = l.applyRuleEntries(allErrs)

	validation.SortValidationErrors(allErrs)

	l.logger.Debugw("lint complete", "document", docInfo.Location, "findings", len(allErrs))

	return &Output{
		Results:    allErrs,
		Format:     l.config.OutputFormat,
		categoryOf: l.registry.CategoryOf,
	}, nil
}

func (l *Linter[T]) runRules(ctx context.Context, docInfo *DocumentInfo[T], opts *LintOptions) ([]error, error) {
	enabledRules := l.getEnabledRules()

	var (
		mu   sync.Mutex
		errs []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for _, rule := range enabledRules {
		if opts != nil && opts.VersionFilter != nil && *opts.VersionFilter != "" {
			if !version.MatchesAny(*opts.VersionFilter, rule.Versions()) {
				l.logger.Debugw("skipping rule for document version", "rule", rule.ID(), "version", *opts.VersionFilter)
				continue
			}
		}

		ruleConfig := l.getRuleConfig(rule.ID())
		ruleConfig.Logger = l.logger

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			l.logger.Debugw("running rule", "rule", rule.ID())
			ruleErrs := rule.Run(gctx, docInfo, &ruleConfig)

			mu.Lock()
			errs = append(errs, ruleErrs...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return errs, nil
}

func (l *Linter[T]) getEnabledRules() []RuleRunner[T] {
	// ruleID -> enabled, resolved in order: rulesets, categories, rule entries
	ruleStatus := make(map[string]bool)

	for _, ruleset := range l.config.Extends {
		ids, ok := l.registry.GetRuleset(ruleset)
		if !ok {
			l.logger.Warnw("unknown ruleset", "ruleset", ruleset)
			continue
		}
		for _, id := range ids {
			ruleStatus[id] = true
		}
	}

	for _, rule := range l.registry.AllRules() {
		if catConfig, ok := l.config.Categories[rule.Category()]; ok {
			if catConfig.Enabled != nil {
				ruleStatus[rule.ID()] = *catConfig.Enabled
			}
		}
	}

	for _, entry := range l.config.Rules {
		if entry.appliesToRule() && entry.Disabled != nil {
			ruleStatus[entry.ID] = !*entry.Disabled
		}
	}

	var enabled []RuleRunner[T]
	for id, enabledFlag := range ruleStatus {
		if !enabledFlag {
			continue
		}
		if rule, ok := l.registry.GetRule(id); ok {
			enabled = append(enabled, rule)
		}
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].ID() < enabled[j].ID()
	})

	return enabled
}

func (l *Linter[T]) getRuleConfig(ruleID string) RuleConfig {
	config := RuleConfig{}

	if rule, ok := l.registry.GetRule(ruleID); ok {
		if catConfig, ok := l.config.Categories[rule.Category()]; ok {
			if catConfig.Severity != nil {
				config.Severity = catConfig.Severity
			}
		}
	}

	for _, entry := range l.config.Rules {
		if entry.ID == ruleID && entry.appliesToRule() && entry.Severity != nil {
			config.Severity = entry.Severity
		}
	}

	return config
}

// applyRuleEntries applies entries with a match expression to the findings
// whose message they match. Later entries win.
func (l *Linter[T]) applyRuleEntries(errs []error) []error {
	filtered := errs[:0]
	for _, err := range errs {
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			filtered = append(filtered, err)
			continue
		}

		keep := true
		for _, entry := range l.config.Rules {
			if entry.ID != vErr.Rule || entry.appliesToRule() {
				continue
			}
			if !entry.Match.MatchString(vErr.Message()) {
				continue
			}
			if entry.Severity != nil {
				vErr.Severity = *entry.Severity
			}
			if entry.Disabled != nil {
				keep = !*entry.Disabled
			}
		}
		if keep {
			filtered = append(filtered, err)
		}
	}
	return filtered
}

// Output represents the result of linting
type Output struct {
	Results []error
	Format  OutputFormat

	categoryOf format.CategoryFunc
}

// HasErrors reports whether any finding has error severity. Errors that
// aren't findings count as errors.
func (o *Output) HasErrors() bool {
	return o.ErrorCount() > 0
}

func (o *Output) ErrorCount() int {
	count := 0
	for _, err := range o.Results {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			if vErr.Severity == validation.SeverityError {
				count++
			}
		} else {
			count++
		}
	}
	return count
}

func (o *Output) FormatText() string {
	s, _ := format.NewTextFormatter().Format(o.Results)
	return s
}

func (o *Output) FormatJSON() string {
	s, _ := format.NewJSONFormatter(o.categoryOf).Format(o.Results)
	return s
}

func (o *Output) FormatSummary() string {
	s, _ := format.NewSummaryFormatter(o.categoryOf).Format(o.Results)
	return s
}

// String renders the output in its configured format.
func (o *Output) String() string {
	switch o.Format {
	case OutputFormatJSON:
		return o.FormatJSON()
	case OutputFormatSummary:
		return o.FormatSummary()
	default:
		return o.FormatText()
	}
}
