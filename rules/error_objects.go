package rules

import (
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

var errorObjectRules = []spectral.Definition{
	{
		ID:          "jsonapi-errors-items",
		Description: "The errors member must be an array of error objects.",
		Message:     "Error objects must be of type object, found {{value}}.",
		Category:    CategoryErrorObjects,
		Severity:    validation.SeverityError,
		Given:       under(documents, ".properties.errors.items"),
		Then:        []spectral.Then{enumeration("type", "object")},
		Recommended: true,
		Link:        link("error-objects"),
	},
	{
		ID:          "jsonapi-error-object-allowed-members",
		Description: "An error object may only contain id, links, status, code, title, detail, source and meta.",
		Message:     "`{{value}}` is not an error object member.",
		Category:    CategoryErrorObjects,
		Severity:    validation.SeverityError,
		Given:       errorObjects,
		Then:        []spectral.Then{enumeration(spectral.FieldKey, "id", "links", "status", "code", "title", "detail", "source", "meta")},
		Recommended: true,
		Link:        link("error-objects"),
		GoodExample: `items:
  type: object
  properties:
    status:
      type: string
    detail:
      type: string`,
		BadExample: `items:
  type: object
  properties:
    message:
      type: string`,
	},
	{
		ID:          "jsonapi-error-object-member-types",
		Description: "Error object status, code, title and detail are strings; links, source and meta are objects.",
		Category:    CategoryErrorObjects,
		Severity:    validation.SeverityError,
		Given:       errorObjects,
		Then: []spectral.Then{
			propertyType("id", "string"),
			propertyType("status", "string"),
			propertyType("code", "string"),
			propertyType("title", "string"),
			propertyType("detail", "string"),
			propertyType("links", "object"),
			propertyType("source", "object"),
			propertyType("meta", "object"),
		},
		Recommended: true,
		Link:        link("error-objects"),
		Rationale:   "The status member is the HTTP status code applicable to this problem, expressed as a string value.",
	},
	{
		ID:          "jsonapi-error-source-members",
		Description: "An error source may contain pointer and parameter.",
		Message:     "`{{value}}` is not an error source member.",
		Category:    CategoryErrorObjects,
		Severity:    validation.SeverityWarning,
		Given:       under(errorObjects, ".source.properties"),
		Then: []spectral.Then{
			enumeration(spectral.FieldKey, "pointer", "parameter"),
			propertyType("pointer", "string"),
			propertyType("parameter", "string"),
		},
		Recommended: true,
		Link:        link("error-objects"),
	},
	{
		ID:          "jsonapi-error-links-members",
		Description: "Error object links may only contain about.",
		Message:     "`{{value}}` is not an error links member.",
		Category:    CategoryErrorObjects,
		Severity:    validation.SeverityWarning,
		Given:       under(errorObjects, ".links.properties"),
		Then:        []spectral.Then{enumeration(spectral.FieldKey, "about")},
		Recommended: true,
		Link:        link("error-objects"),
	},
}
