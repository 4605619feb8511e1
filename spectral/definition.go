// Package spectral compiles declarative lint rules, in the shape used by
// Spectral rulesets, into rules the linter engine can run.
//
// A rule selects nodes with one or more JSONPath expressions ("given") and
// applies one or more functions to each of them ("then"). Rulesets can be
// read from and written to the Spectral YAML format.
package spectral

import (
	"github.com/openapi-jsonapi/jsonapi-lint/document"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

// Definition is the declarative form of a rule.
type Definition struct {
	ID          string
	Description string
	Summary     string
	// Message is a template for finding messages. It defaults to "{{error}}".
	Message  string
	Category string
	Severity validation.Severity
	// Formats restricts the rule to documents of the given Spectral formats.
	Formats     []string
	Given       []string
	Then        []Then
	Recommended bool
	Link        string

	Rationale   string
	GoodExample string
	BadExample  string
}

// Then applies a function to the selected node or one of its fields.
type Then struct {
	// Field selects what the function receives. Empty selects the node
	// itself, "@key" each key of a mapping, a "$" prefix a JSONPath relative
	// to the node and anything else a dotted property path.
	Field           string         `yaml:"field,omitempty" json:"field,omitempty"`
	Function        string         `yaml:"function" json:"function"`
	FunctionOptions map[string]any `yaml:"functionOptions,omitempty" json:"functionOptions,omitempty"`
	// Message overrides the rule message for this check.
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
}

// FieldKey iterates over the keys of a mapping.
const FieldKey = "@key"

var formatVersions = map[string]string{
	document.FormatOAS2:   "2",
	document.FormatOAS3:   "3",
	document.FormatOAS3_0: "3.0",
	document.FormatOAS3_1: "3.1",
}

// Versions converts Spectral formats to the version prefixes the linter
// filters on.
func Versions(formats []string) []string {
	if len(formats) == 0 {
		return nil
	}
	versions := make([]string, 0, len(formats))
	for _, f := range formats {
		if v, ok := formatVersions[f]; ok {
			versions = append(versions, v)
		}
	}
	return versions
}
