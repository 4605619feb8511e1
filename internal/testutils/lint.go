// Package testutils holds helpers shared by the rule tests.
package testutils

import (
	"testing"

	"github.com/openapi-jsonapi/jsonapi-lint/document"
	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/openapi-jsonapi/jsonapi-lint/linter"
	"github.com/openapi-jsonapi/jsonapi-lint/rules"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Finding is the comparable part of a validation error.
type Finding struct {
	Rule     string
	Severity validation.Severity
	Message  string
	Pointer  string
	Line     int
}

// NewRegistry returns a registry holding the built-in rules.
func NewRegistry(t testing.TB) *linter.Registry[*document.Document] {
	t.Helper()

	registry := linter.NewRegistry[*document.Document]()
	require.NoError(t, rules.Register(registry, functions.Builtins()))
	return registry
}

// Lint parses src and lints it with only ruleIDs enabled.
func Lint(t *testing.T, src string, ruleIDs ...string) []*validation.Error {
	t.Helper()

	doc, err := document.Parse(t.Context(), []byte(src), "openapi.yaml")
	require.NoError(t, err)

	disabled := false
	config := linter.NewConfig()
	config.Extends = nil
	for _, id := range ruleIDs {
		config.Rules = append(config.Rules, linter.RuleEntry{ID: id, Disabled: &disabled})
	}

	l := linter.NewLinter(config, NewRegistry(t), linter.WithLogger(zaptest.NewLogger(t).Sugar()))
	output, err := l.Lint(t.Context(), linter.NewDocumentInfo(doc, doc.Location()), nil, nil)
	require.NoError(t, err)

	vErrs := make([]*validation.Error, 0, len(output.Results))
	for _, result := range output.Results {
		var vErr *validation.Error
		require.ErrorAs(t, result, &vErr)
		vErrs = append(vErrs, vErr)
	}
	return vErrs
}

// Findings lints src with ruleID enabled and returns its findings.
func Findings(t *testing.T, src string, ruleID string) []Finding {
	t.Helper()

	var findings []Finding
	for _, vErr := range Lint(t, src, ruleID) {
		if vErr.Rule != ruleID {
			continue
		}
		findings = append(findings, Finding{
			Rule:     vErr.Rule,
			Severity: vErr.Severity,
			Message:  vErr.Message(),
			Pointer:  vErr.Pointer(),
			Line:     vErr.GetLineNumber(),
		})
	}
	return findings
}

// Messages lints src with ruleID enabled and returns the finding messages.
func Messages(t *testing.T, src string, ruleID string) []string {
	t.Helper()

	var msgs []string
	for _, f := range Findings(t, src, ruleID) {
		msgs = append(msgs, f.Message)
	}
	return msgs
}
