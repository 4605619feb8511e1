package rules

import (
	"fmt"
	"slices"

	"github.com/openapi-jsonapi/jsonapi-lint/document"
	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/openapi-jsonapi/jsonapi-lint/linter"
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"go.uber.org/multierr"
)

// Definitions returns the definitions of every built-in rule. Each call
// returns fresh copies.
func Definitions() []spectral.Definition {
	groups := [][]spectral.Definition{
		mediaTypeRules,
		statusCodeRules,
		documentStructureRules,
		resourceObjectRules,
		errorObjectRules,
		queryParameterRules,
		httpMethodRules,
		namingRules,
	}

	var defs []spectral.Definition
	for _, group := range groups {
		for _, def := range group {
			def.Given = slices.Clone(def.Given)
			def.Then = slices.Clone(def.Then)
			def.Formats = []string{document.FormatOAS3}
			defs = append(defs, def)
		}
	}
	return defs
}

// Register compiles the built-in rules against fns and registers them, along
// with the recommended ruleset.
func Register(registry *linter.Registry[*document.Document], fns *functions.Registry) error {
	var errs error
	var recommended []string

	for _, def := range Definitions() {
		rule, err := spectral.Compile(def, fns)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule %s: %w", def.ID, err))
			continue
		}
		registry.Register(rule)
		if def.Recommended {
			recommended = append(recommended, def.ID)
		}
	}
	if errs != nil {
		return errs
	}

	return registry.AddToRuleset(RulesetRecommended, recommended...)
}
