package linter

import (
	"context"

	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

// Rule describes a single lint rule.
type Rule interface {
	// ID returns the unique identifier of the rule (e.g. "jsonapi-media-type-response")
	ID() string

	// Category returns the rule category (e.g. "media-type", "error-objects")
	Category() string

	// Description returns a human-readable description of what the rule checks
	Description() string

	// Summary returns a short summary of what the rule checks
	Summary() string

	// Link returns an optional URL to documentation for this rule
	Link() string

	// DefaultSeverity returns the severity used when the configuration doesn't override it
	DefaultSeverity() validation.Severity

	// Versions returns the document versions this rule applies to (nil = all versions).
	// "3" matches every 3.x document, "3.1" matches 3.1.x.
	Versions() []string
}

// RuleRunner is a rule that can be executed against documents of type T.
type RuleRunner[T any] interface {
	Rule

	// Run executes the rule against the document and returns its findings,
	// normally as *validation.Error values.
	Run(ctx context.Context, docInfo *DocumentInfo[T], config *RuleConfig) []error
}

// DocumentedRule provides extended documentation for a rule
type DocumentedRule interface {
	Rule

	// GoodExample returns YAML showing correct usage
	GoodExample() string

	// BadExample returns YAML showing incorrect usage
	BadExample() string

	// Rationale explains why this rule exists
	Rationale() string
}

// DeclarativeRule is implemented by rules built from selectors and functions.
type DeclarativeRule interface {
	Rule

	// Given returns the selector expressions of the rule
	Given() []string

	// Functions returns the names of the functions the rule applies
	Functions() []string
}
