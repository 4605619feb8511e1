package rules

import (
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

var queryParameterRules = []spectral.Definition{
	{
		ID:          "jsonapi-query-parameter-name",
		Description: "Implementation specific query parameters must contain at least one non a-z character; all-lowercase names are reserved for JSON:API.",
		Message:     "Query parameter `{{value}}` is reserved by JSON:API.",
		Category:    CategoryQueryParameters,
		Severity:    validation.SeverityError,
		Given:       queryParameters,
		Then:        []spectral.Then{matches("name", `^(include|sort|filter)$|[^a-z]`)},
		Recommended: true,
		Link:        link("query-parameters"),
		GoodExample: `parameters:
  - name: page[number]
    in: query
  - name: camelCase
    in: query`,
		BadExample: `parameters:
  - name: limit
    in: query`,
	},
	{
		ID:          "jsonapi-query-parameter-family",
		Description: "The fields and page parameter families take a member name in brackets.",
		Message:     "Query parameter `{{value}}` must be of the form fields[TYPE] or page[NAME].",
		Category:    CategoryQueryParameters,
		Severity:    validation.SeverityError,
		Given:       queryParameters,
		Then:        []spectral.Then{notMatches("name", `^(fields|page)(\[\])?$`)},
		Recommended: true,
		Link:        link("fetching-sparse-fieldsets"),
	},
	{
		ID:          "jsonapi-include-sort-string",
		Description: "The include and sort parameters take a comma-separated list of paths or fields.",
		Message:     "The `include` and `sort` parameters must be strings, found {{value}}.",
		Category:    CategoryQueryParameters,
		Severity:    validation.SeverityWarning,
		Given: []string{
			operations + ".parameters[?@.in == 'query' && (@.name == 'include' || @.name == 'sort')].schema",
			"$.paths[*].parameters[?@.in == 'query' && (@.name == 'include' || @.name == 'sort')].schema",
		},
		Then:        []spectral.Then{enumeration("type", "string")},
		Recommended: true,
		Link:        link("fetching-includes"),
	},
}
