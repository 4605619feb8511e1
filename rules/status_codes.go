package rules

import (
	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

var statusCodeRules = []spectral.Definition{
	{
		ID:          "jsonapi-no-multiple-4xx",
		Description: "A responses object must not declare more than one 4xx status code.",
		Summary:     "At most one 4xx status code per operation",
		Category:    CategoryStatusCodes,
		Severity:    validation.SeverityError,
		Given:       []string{responses},
		Then:        []spectral.Then{check("", functions.NameNoMultiple4xxStatusCodes)},
		Recommended: true,
		Link:        link("errors-processing"),
		Rationale:   "When a server encounters multiple problems for a single request, the most generally applicable HTTP error code SHOULD be used in the response.",
		GoodExample: `responses:
  '200':
    description: OK
  '400':
    description: Bad Request`,
		BadExample: `responses:
  '400':
    description: Bad Request
  '404':
    description: Not Found`,
	},
	{
		ID:          "jsonapi-no-multiple-5xx",
		Description: "A responses object must not declare more than one 5xx status code.",
		Summary:     "At most one 5xx status code per operation",
		Category:    CategoryStatusCodes,
		Severity:    validation.SeverityError,
		Given:       []string{responses},
		Then:        []spectral.Then{check("", functions.NameNoMultiple5xxStatusCodes)},
		Recommended: true,
		Link:        link("errors-processing"),
		GoodExample: `responses:
  '200':
    description: OK
  '500':
    description: Internal Server Error`,
		BadExample: `responses:
  '500':
    description: Internal Server Error
  '503':
    description: Service Unavailable`,
	},
	{
		ID:          "jsonapi-status-code-format",
		Description: "Response keys must be HTTP status codes, status code ranges, default or specification extensions.",
		Message:     "`{{value}}` is not a valid response status code.",
		Category:    CategoryStatusCodes,
		Severity:    validation.SeverityError,
		Given:       []string{responses},
		Then:        []spectral.Then{matches(spectral.FieldKey, `^([1-5][0-9]{2}|[1-5]XX|default|x-.*)$`)},
		Recommended: true,
		Link:        "https://spec.openapis.org/oas/v3.1.0#patterned-fields-0",
	},
	{
		ID:          "jsonapi-no-content-204",
		Description: "A 204 No Content response must not contain a document.",
		Message:     "A 204 response must not declare content.",
		Category:    CategoryStatusCodes,
		Severity:    validation.SeverityError,
		Given:       []string{responses + "['204']"},
		Then:        []spectral.Then{check("content", "undefined")},
		Recommended: true,
		Link:        link("crud-creating-responses-204"),
		GoodExample: `responses:
  '204':
    description: No Content`,
		BadExample: `responses:
  '204':
    description: No Content
    content:
      application/vnd.api+json:
        schema:
          type: object`,
	},
	{
		ID:          "jsonapi-conflict-409",
		Description: "Operations that create resources should document the 409 Conflict response.",
		Message:     "POST operations should declare a 409 response.",
		Category:    CategoryStatusCodes,
		Severity:    validation.SeverityHint,
		Given:       []string{"$.paths[*].post.responses"},
		Then:        []spectral.Then{check("409", "defined")},
		Link:        link("crud-creating-responses-409"),
	},
	{
		ID:          "jsonapi-unsupported-media-type-415",
		Description: "Operations that accept a request body should document the 415 Unsupported Media Type response.",
		Message:     "Operations with a request body should declare a 415 response.",
		Category:    CategoryStatusCodes,
		Severity:    validation.SeverityHint,
		Given:       []string{operationsWithRequestBody + ".responses"},
		Then:        []spectral.Then{check("415", "defined")},
		Link:        link("content-negotiation-servers"),
	},
	{
		ID:          "jsonapi-not-acceptable-406",
		Description: "Operations should document the 406 Not Acceptable response.",
		Message:     "Operations should declare a 406 response.",
		Category:    CategoryStatusCodes,
		Severity:    validation.SeverityHint,
		Given:       []string{responses},
		Then:        []spectral.Then{check("406", "defined")},
		Link:        link("content-negotiation-servers"),
	},
}
