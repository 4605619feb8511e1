package linter_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/openapi-jsonapi/jsonapi-lint/linter"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Mock document type for testing
type MockDoc struct {
	ID string
}

// Mock rule for testing
type mockRule struct {
	id              string
	category        string
	description     string
	summary         string
	link            string
	defaultSeverity validation.Severity
	versions        []string
	runFunc         func(ctx context.Context, docInfo *linter.DocumentInfo[*MockDoc], config *linter.RuleConfig) []error
}

func (r *mockRule) ID() string                           { return r.id }
func (r *mockRule) Category() string                     { return r.category }
func (r *mockRule) Description() string                  { return r.description }
func (r *mockRule) Summary() string                      { return r.summary }
func (r *mockRule) Link() string                         { return r.link }
func (r *mockRule) DefaultSeverity() validation.Severity { return r.defaultSeverity }
func (r *mockRule) Versions() []string                   { return r.versions }

func (r *mockRule) Run(ctx context.Context, docInfo *linter.DocumentInfo[*MockDoc], config *linter.RuleConfig) []error {
	if r.runFunc != nil {
		return r.runFunc(ctx, docInfo, config)
	}
	return []error{
		validation.NewValidationError(config.GetSeverity(r.defaultSeverity), r.id, errors.New(r.id+" failed"), nil),
	}
}

func newRegistry(rules ...*mockRule) *linter.Registry[*MockDoc] {
	registry := linter.NewRegistry[*MockDoc]()
	for _, rule := range rules {
		registry.Register(rule)
	}
	return registry
}

func lint(t *testing.T, config *linter.Config, registry *linter.Registry[*MockDoc], opts *linter.LintOptions) *linter.Output {
	t.Helper()

	lntr := linter.NewLinter(config, registry, linter.WithLogger(zaptest.NewLogger(t).Sugar()))
	output, err := lntr.Lint(t.Context(), linter.NewDocumentInfo(&MockDoc{ID: "test"}, "openapi.yaml"), nil, opts)
	require.NoError(t, err)
	return output
}

func ruleIDs(output *linter.Output) []string {
	var ids []string
	for _, err := range output.Results {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			ids = append(ids, vErr.Rule)
		}
	}
	return ids
}

func TestLinter_RuleSelection(t *testing.T) {
	t.Parallel()

	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name     string
		config   *linter.Config
		rulesets map[string][]string
		expected []string
	}{
		{
			name:     "extends all includes all rules",
			config:   &linter.Config{Extends: []string{"all"}},
			expected: []string{"links-a", "media-a", "media-b"},
		},
		{
			name:     "extends ruleset",
			config:   &linter.Config{Extends: []string{"recommended"}},
			rulesets: map[string][]string{"recommended": {"media-a"}},
			expected: []string{"media-a"},
		},
		{
			name: "disabled rule not executed",
			config: &linter.Config{
				Extends: []string{"all"},
				Rules:   []linter.RuleEntry{{ID: "media-a", Disabled: boolPtr(true)}},
			},
			expected: []string{"links-a", "media-b"},
		},
		{
			name: "category disabled affects all rules in category",
			config: &linter.Config{
				Extends:    []string{"all"},
				Categories: map[string]linter.CategoryConfig{"media-type": {Enabled: boolPtr(false)}},
			},
			expected: []string{"links-a"},
		},
		{
			name: "rule entry re-enables rule in disabled category",
			config: &linter.Config{
				Extends:    []string{"all"},
				Categories: map[string]linter.CategoryConfig{"media-type": {Enabled: boolPtr(false)}},
				Rules:      []linter.RuleEntry{{ID: "media-b", Disabled: boolPtr(false)}},
			},
			expected: []string{"links-a", "media-b"},
		},
		{
			name:     "unknown ruleset is ignored",
			config:   &linter.Config{Extends: []string{"strict"}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := newRegistry(
				&mockRule{id: "media-a", category: "media-type", defaultSeverity: validation.SeverityError},
				&mockRule{id: "media-b", category: "media-type", defaultSeverity: validation.SeverityWarning},
				&mockRule{id: "links-a", category: "links", defaultSeverity: validation.SeverityHint},
			)
			for name, ids := range tt.rulesets {
				require.NoError(t, registry.RegisterRuleset(name, ids))
			}

			output := lint(t, tt.config, registry, nil)
			assert.ElementsMatch(t, tt.expected, ruleIDs(output))
		})
	}
}

func TestLinter_SeverityOverrides(t *testing.T) {
	t.Parallel()

	warning := validation.SeverityWarning
	info := validation.SeverityInfo

	registry := newRegistry(
		&mockRule{id: "media-a", category: "media-type", defaultSeverity: validation.SeverityError},
		&mockRule{id: "media-b", category: "media-type", defaultSeverity: validation.SeverityError},
	)
	config := &linter.Config{
		Extends:    []string{"all"},
		Categories: map[string]linter.CategoryConfig{"media-type": {Severity: &warning}},
		Rules:      []linter.RuleEntry{{ID: "media-b", Severity: &info}},
	}

	output := lint(t, config, registry, nil)
	require.Len(t, output.Results, 2)

	severities := map[string]validation.Severity{}
	for _, err := range output.Results {
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		severities[vErr.Rule] = vErr.Severity
	}
	assert.Equal(t, validation.SeverityWarning, severities["media-a"])
	assert.Equal(t, validation.SeverityInfo, severities["media-b"])
	assert.False(t, output.HasErrors())
	assert.Equal(t, 0, output.ErrorCount())
}

func TestLinter_MatchEntries(t *testing.T) {
	t.Parallel()

	disabled := true
	hint := validation.SeverityHint

	registry := newRegistry(&mockRule{
		id:       "error-objects",
		category: "error-objects",
		runFunc: func(_ context.Context, _ *linter.DocumentInfo[*MockDoc], _ *linter.RuleConfig) []error {
			return []error{
				validation.NewValidationError(validation.SeverityError, "error-objects", errors.New("`title` should be a string"), nil),
				validation.NewValidationError(validation.SeverityError, "error-objects", errors.New("`status` should be a string"), nil),
				validation.NewValidationError(validation.SeverityError, "error-objects", errors.New("`code` should be a string"), nil),
			}
		},
	})
	config := &linter.Config{
		Extends: []string{"all"},
		Rules: []linter.RuleEntry{
			{ID: "error-objects", Match: regexp.MustCompile("title"), Disabled: &disabled},
			{ID: "error-objects", Match: regexp.MustCompile("^`code`"), Severity: &hint},
		},
	}

	output := lint(t, config, registry, nil)
	require.Len(t, output.Results, 2)
	assert.Equal(t, 1, output.ErrorCount())
	assert.True(t, output.HasErrors())
	assert.NotContains(t, output.FormatText(), "title")
}

func TestLinter_VersionFilter(t *testing.T) {
	t.Parallel()

	registry := newRegistry(
		&mockRule{id: "oas3-only", category: "media-type", versions: []string{"3"}},
		&mockRule{id: "oas31-only", category: "media-type", versions: []string{"3.1"}},
		&mockRule{id: "oas2-only", category: "media-type", versions: []string{"2"}},
		&mockRule{id: "any-version", category: "media-type"},
	)

	tests := []struct {
		version  string
		expected []string
	}{
		{version: "3.0.3", expected: []string{"oas3-only", "any-version"}},
		{version: "3.1.0", expected: []string{"oas3-only", "oas31-only", "any-version"}},
		{version: "2.0", expected: []string{"oas2-only", "any-version"}},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()

			output := lint(t, linter.NewConfig(), registry, &linter.LintOptions{VersionFilter: &tt.version})
			assert.ElementsMatch(t, tt.expected, ruleIDs(output))
		})
	}
}

func TestLinter_PreExistingErrorsAndSorting(t *testing.T) {
	t.Parallel()

	registry := newRegistry(&mockRule{id: "media-a", category: "media-type"})
	lntr := linter.NewLinter(linter.NewConfig(), registry)

	pre := []error{errors.New("failed to resolve reference")}
	output, err := lntr.Lint(t.Context(), linter.NewDocumentInfo(&MockDoc{}, ""), pre, nil)
	require.NoError(t, err)

	require.Len(t, output.Results, 2)
	assert.EqualError(t, output.Results[1], "failed to resolve reference")
	assert.Equal(t, 2, output.ErrorCount())
}

func TestLinter_RunsRulesConcurrentlyWithLimit(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32
	run := func(_ context.Context, _ *linter.DocumentInfo[*MockDoc], config *linter.RuleConfig) []error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		config.GetLogger().Debugw("running")
		running.Add(-1)
		return nil
	}

	registry := linter.NewRegistry[*MockDoc]()
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		registry.Register(&mockRule{id: id, category: "c", runFunc: run})
	}

	lntr := linter.NewLinter(linter.NewConfig(), registry, linter.WithConcurrency(2))
	output, err := lntr.Lint(t.Context(), linter.NewDocumentInfo(&MockDoc{}, ""), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, output.Results)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestLinter_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	registry := newRegistry(&mockRule{id: "media-a", category: "media-type"})
	lntr := linter.NewLinter(linter.NewConfig(), registry)

	_, err := lntr.Lint(ctx, linter.NewDocumentInfo(&MockDoc{}, ""), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutput_Formats(t *testing.T) {
	t.Parallel()

	registry := newRegistry(&mockRule{id: "media-a", category: "media-type", defaultSeverity: validation.SeverityError})

	for _, tt := range []struct {
		format   linter.OutputFormat
		contains string
	}{
		{format: linter.OutputFormatText, contains: "media-a failed"},
		{format: linter.OutputFormatJSON, contains: `"category": "media-type"`},
		{format: linter.OutputFormatSummary, contains: "across 1 rules"},
	} {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			config := linter.NewConfig()
			config.OutputFormat = tt.format

			output := lint(t, config, registry, nil)
			assert.True(t, strings.Contains(output.String(), tt.contains), output.String())
		})
	}
}

func TestNewDocumentInfo(t *testing.T) {
	t.Parallel()

	doc := &MockDoc{ID: "test-doc"}
	docInfo := linter.NewDocumentInfo(doc, "/path/to/openapi.yaml")

	assert.Equal(t, doc, docInfo.Document)
	assert.Equal(t, "/path/to/openapi.yaml", docInfo.Location)
}
