package rules

import (
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

var documentStructureRules = []spectral.Definition{
	{
		ID:          "jsonapi-document-object",
		Description: "A JSON object must be at the root of every JSON:API document.",
		Message:     "Document schema must be of type object, found {{value}}.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityError,
		Given:       documents,
		Then:        []spectral.Then{enumeration("type", "object")},
		Recommended: true,
		Link:        link("document-top-level"),
	},
	{
		ID:          "jsonapi-document-required-members",
		Description: "A document must contain at least one of the top-level members data, errors or meta.",
		Message:     "Document must contain at least one of `data`, `errors` or `meta`.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityError,
		Given:       documentMembers,
		Then:        []spectral.Then{requiresAny("data", "errors", "meta")},
		Recommended: true,
		Link:        link("document-top-level"),
		GoodExample: `schema:
  type: object
  properties:
    data:
      type: object`,
		BadExample: `schema:
  type: object
  properties:
    items:
      type: array`,
	},
	{
		ID:          "jsonapi-document-allowed-members",
		Description: "A document may only contain the top-level members data, errors, meta, jsonapi, links and included.",
		Message:     "`{{value}}` is not a JSON:API top-level member.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityError,
		Given:       documentMembers,
		Then:        []spectral.Then{enumeration(spectral.FieldKey, "data", "errors", "meta", "jsonapi", "links", "included")},
		Recommended: true,
		Link:        link("document-top-level"),
	},
	{
		ID:          "jsonapi-document-data-errors-exclusive",
		Description: "The members data and errors must not coexist in the same document.",
		Message:     "Document must not contain both `data` and `errors`.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityError,
		Given:       documentMembers,
		Then: []spectral.Then{{
			Function: "schema",
			FunctionOptions: map[string]any{"schema": map[string]any{
				"not": map[string]any{"required": []string{"data", "errors"}},
			}},
		}},
		Recommended: true,
		Link:        link("document-top-level"),
	},
	{
		ID:          "jsonapi-document-included-requires-data",
		Description: "A document that does not contain data must not contain included.",
		Message:     "Document with `included` must also contain `data`.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityError,
		Given:       documentMembers,
		Then: []spectral.Then{{
			Function: "schema",
			FunctionOptions: map[string]any{"schema": map[string]any{
				"if":   map[string]any{"required": []string{"included"}},
				"then": map[string]any{"required": []string{"data"}},
			}},
		}},
		Recommended: true,
		Link:        link("document-top-level"),
	},
	{
		ID:          "jsonapi-document-member-types",
		Description: "Top-level errors and included are arrays; meta, links and jsonapi are objects.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityError,
		Given:       documentMembers,
		Then: []spectral.Then{
			propertyType("errors", "array"),
			propertyType("included", "array"),
			propertyType("meta", "object"),
			propertyType("links", "object"),
			propertyType("jsonapi", "object"),
		},
		Recommended: true,
		Link:        link("document-top-level"),
		GoodExample: `properties:
  errors:
    type: array
  meta:
    type: object`,
		BadExample: `properties:
  errors:
    type: object
  meta:
    type: string`,
	},
	{
		ID:          "jsonapi-document-links-members",
		Description: "Top-level links may contain self, related and the pagination links first, last, prev and next.",
		Message:     "`{{value}}` is not a JSON:API top-level link.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityWarning,
		Given:       under(documents, ".properties.links.properties"),
		Then:        []spectral.Then{enumeration(spectral.FieldKey, "self", "related", "first", "last", "prev", "next")},
		Recommended: true,
		Link:        link("document-top-level"),
	},
	{
		ID:          "jsonapi-jsonapi-object-members",
		Description: "The jsonapi object may contain only version and meta.",
		Message:     "`{{value}}` is not a member of the jsonapi object.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityWarning,
		Given:       under(documents, ".properties.jsonapi.properties"),
		Then: []spectral.Then{
			enumeration(spectral.FieldKey, "version", "meta"),
			propertyType("version", "string"),
		},
		Recommended: true,
		Link:        link("document-jsonapi-object"),
	},
	{
		ID:          "jsonapi-error-response-errors",
		Description: "Error responses must contain the errors member.",
		Message:     "Error responses must contain an `errors` member.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityWarning,
		Given:       errorDocumentMembers,
		Then:        []spectral.Then{check("errors", "defined")},
		Recommended: true,
		Link:        link("errors"),
	},
	{
		ID:          "jsonapi-error-response-no-data",
		Description: "Error responses must not contain the data member.",
		Message:     "Error responses must not contain a `data` member.",
		Category:    CategoryDocumentStructure,
		Severity:    validation.SeverityError,
		Given:       errorDocumentMembers,
		Then:        []spectral.Then{check("data", "undefined")},
		Recommended: true,
		Link:        link("errors"),
	},
}
