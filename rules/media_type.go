package rules

import (
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

var mediaTypeRules = []spectral.Definition{
	{
		ID:          "jsonapi-media-type-request",
		Description: "Request bodies must be sent with the JSON:API media type.",
		Summary:     "Request media type is application/vnd.api+json",
		Message:     "Request media type `{{value}}` is not " + MediaType + ".",
		Category:    CategoryMediaType,
		Severity:    validation.SeverityError,
		Given:       requestContent,
		Then:        []spectral.Then{enumeration(spectral.FieldKey, MediaType)},
		Recommended: true,
		Link:        link("content-negotiation-clients"),
		Rationale:   "Clients MUST send all JSON:API data in request documents with the header Content-Type: application/vnd.api+json.",
		GoodExample: `requestBody:
  content:
    application/vnd.api+json:
      schema:
        type: object`,
		BadExample: `requestBody:
  content:
    application/json:
      schema:
        type: object`,
	},
	{
		ID:          "jsonapi-media-type-response",
		Description: "Responses must be sent with the JSON:API media type.",
		Summary:     "Response media type is application/vnd.api+json",
		Message:     "Response media type `{{value}}` is not " + MediaType + ".",
		Category:    CategoryMediaType,
		Severity:    validation.SeverityError,
		Given:       responseContent,
		Then:        []spectral.Then{enumeration(spectral.FieldKey, MediaType)},
		Recommended: true,
		Link:        link("content-negotiation-servers"),
		Rationale:   "Servers MUST send all JSON:API data in response documents with the header Content-Type: application/vnd.api+json.",
		GoodExample: `responses:
  '200':
    content:
      application/vnd.api+json:
        schema:
          type: object`,
		BadExample: `responses:
  '200':
    content:
      application/json:
        schema:
          type: object`,
	},
	{
		ID:          "jsonapi-media-type-parameters",
		Description: "The JSON:API media type must not carry media type parameters.",
		Message:     "Media type `{{value}}` must not specify parameters.",
		Category:    CategoryMediaType,
		Severity:    validation.SeverityError,
		Given:       join(requestContent, responseContent),
		Then:        []spectral.Then{notMatches(spectral.FieldKey, `^application/vnd\.api\+json\s*;`)},
		Recommended: true,
		Link:        link("content-negotiation"),
	},
	{
		ID:          "jsonapi-media-type-single",
		Description: "A content map should declare a single media type.",
		Message:     "Content should declare exactly one media type.",
		Category:    CategoryMediaType,
		Severity:    validation.SeverityWarning,
		Given:       join(requestContent, responseContent),
		Then: []spectral.Then{{
			Function:        "length",
			FunctionOptions: map[string]any{"max": 1},
		}},
		Recommended: true,
		Link:        link("content-negotiation"),
	},
}
