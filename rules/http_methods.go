package rules

import (
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

var httpMethodRules = []spectral.Definition{
	{
		ID:          "jsonapi-get-no-request-body",
		Description: "GET and HEAD requests fetch data and must not carry a request body.",
		Message:     "GET and HEAD operations must not declare a requestBody.",
		Category:    CategoryHTTPMethods,
		Severity:    validation.SeverityError,
		Given:       []string{"$.paths[*]['get','head']"},
		Then:        []spectral.Then{check("requestBody", "undefined")},
		Recommended: true,
		Link:        link("fetching"),
		GoodExample: `get:
  responses:
    '200':
      description: OK`,
		BadExample: `get:
  requestBody:
    content:
      application/vnd.api+json: {}
  responses:
    '200':
      description: OK`,
	},
	{
		ID:          "jsonapi-get-success-200",
		Description: "A successful fetch responds with 200 OK.",
		Message:     "GET operations must declare a 200 response.",
		Category:    CategoryHTTPMethods,
		Severity:    validation.SeverityError,
		Given:       []string{"$.paths[*].get.responses"},
		Then:        []spectral.Then{check("200", "defined")},
		Recommended: true,
		Link:        link("fetching-resources-responses-200"),
	},
	{
		ID:          "jsonapi-post-request-body",
		Description: "Creating a resource requires a request document.",
		Message:     "POST operations must declare a requestBody.",
		Category:    CategoryHTTPMethods,
		Severity:    validation.SeverityWarning,
		Given:       []string{"$.paths[*].post"},
		Then:        []spectral.Then{check("requestBody", "truthy")},
		Recommended: true,
		Link:        link("crud-creating"),
	},
	{
		ID:          "jsonapi-post-success-codes",
		Description: "A successful create responds with 201 Created, 202 Accepted or 204 No Content.",
		Message:     "POST operations must declare a 201, 202 or 204 response.",
		Category:    CategoryHTTPMethods,
		Severity:    validation.SeverityError,
		Given:       []string{"$.paths[*].post.responses"},
		Then:        []spectral.Then{requiresAny("201", "202", "204")},
		Recommended: true,
		Link:        link("crud-creating-responses"),
		GoodExample: `post:
  responses:
    '201':
      description: Created`,
		BadExample: `post:
  responses:
    '200':
      description: OK`,
	},
	{
		ID:          "jsonapi-patch-request-body",
		Description: "Updating a resource requires a request document.",
		Message:     "PATCH operations must declare a requestBody.",
		Category:    CategoryHTTPMethods,
		Severity:    validation.SeverityWarning,
		Given:       []string{"$.paths[*].patch"},
		Then:        []spectral.Then{check("requestBody", "truthy")},
		Recommended: true,
		Link:        link("crud-updating"),
	},
	{
		ID:          "jsonapi-patch-success-codes",
		Description: "A successful update responds with 200 OK, 202 Accepted or 204 No Content.",
		Message:     "PATCH operations must declare a 200, 202 or 204 response.",
		Category:    CategoryHTTPMethods,
		Severity:    validation.SeverityError,
		Given:       []string{"$.paths[*].patch.responses"},
		Then:        []spectral.Then{requiresAny("200", "202", "204")},
		Recommended: true,
		Link:        link("crud-updating-responses"),
	},
	{
		ID:          "jsonapi-delete-success-codes",
		Description: "A successful delete responds with 200 OK, 202 Accepted or 204 No Content.",
		Message:     "DELETE operations must declare a 200, 202 or 204 response.",
		Category:    CategoryHTTPMethods,
		Severity:    validation.SeverityError,
		Given:       []string{"$.paths[*].delete.responses"},
		Then:        []spectral.Then{requiresAny("200", "202", "204")},
		Recommended: true,
		Link:        link("crud-deleting-responses"),
	},
	{
		ID:          "jsonapi-no-put",
		Description: "Resources are updated with PATCH; PUT is not part of JSON:API.",
		Message:     "Use PATCH instead of PUT to update resources.",
		Category:    CategoryHTTPMethods,
		Severity:    validation.SeverityWarning,
		Given:       []string{"$.paths[*]"},
		Then:        []spectral.Then{check("put", "undefined")},
		Recommended: true,
		Link:        link("crud-updating"),
	},
}
