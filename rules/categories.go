// Package rules defines the JSON:API v1.0 ruleset for OpenAPI documents.
package rules

// Rule categories for JSON:API linting
const (
	// CategoryMediaType covers the media types requests and responses declare
	CategoryMediaType = "media-type"

	// CategoryStatusCodes covers which status codes responses objects declare
	CategoryStatusCodes = "status-codes"

	// CategoryDocumentStructure covers the top-level members of a JSON:API document
	CategoryDocumentStructure = "document-structure"

	// CategoryResourceObjects covers resource objects, their attributes and relationships
	CategoryResourceObjects = "resource-objects"

	// CategoryErrorObjects covers error objects inside the errors member
	CategoryErrorObjects = "error-objects"

	// CategoryQueryParameters covers query parameter names and schemas
	CategoryQueryParameters = "query-parameters"

	// CategoryHTTPMethods covers what each HTTP method may send and must answer with
	CategoryHTTPMethods = "http-methods"

	// CategoryNaming covers member names
	CategoryNaming = "naming"
)

// RulesetRecommended names the ruleset of rules enabled by default.
const RulesetRecommended = "recommended"

// MediaType is the JSON:API media type.
const MediaType = "application/vnd.api+json"

const specLink = "https://jsonapi.org/format/1.0/"

func link(anchor string) string {
	return specLink + "#" + anchor
}
