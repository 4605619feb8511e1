package rules

import (
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

var resourceObjectRules = []spectral.Definition{
	{
		ID:          "jsonapi-resource-type",
		Description: "A resource object must contain the type member.",
		Message:     "Resource objects must contain a `type` member.",
		Category:    CategoryResourceObjects,
		Severity:    validation.SeverityError,
		Given:       resources,
		Then:        []spectral.Then{check("type", "defined")},
		Recommended: true,
		Link:        link("document-resource-objects"),
	},
	{
		ID:          "jsonapi-resource-id",
		Description: "A resource object in a response must contain the id member.",
		Message:     "Resource objects must contain an `id` member.",
		Category:    CategoryResourceObjects,
		Severity:    validation.SeverityError,
		Given:       responseResources,
		Then:        []spectral.Then{check("id", "defined")},
		Recommended: true,
		Link:        link("document-resource-objects"),
		Rationale:   "The id member is not required only when the resource object originates at the client and represents a new resource to be created.",
	},
	{
		ID:          "jsonapi-resource-member-types",
		Description: "Resource id and type are strings; attributes, relationships, links and meta are objects.",
		Category:    CategoryResourceObjects,
		Severity:    validation.SeverityError,
		Given:       resources,
		Then: []spectral.Then{
			propertyType("id", "string"),
			propertyType("type", "string"),
			propertyType("attributes", "object"),
			propertyType("relationships", "object"),
			propertyType("links", "object"),
			propertyType("meta", "object"),
		},
		Recommended: true,
		Link:        link("document-resource-objects"),
		GoodExample: `properties:
  id:
    type: string
  type:
    type: string`,
		BadExample: `properties:
  id:
    type: integer
  type:
    type: string`,
	},
	{
		ID:          "jsonapi-resource-allowed-members",
		Description: "A resource object may only contain id, type, attributes, relationships, links and meta.",
		Message:     "`{{value}}` is not a resource object member; move it into attributes.",
		Category:    CategoryResourceObjects,
		Severity:    validation.SeverityError,
		Given:       resources,
		Then:        []spectral.Then{enumeration(spectral.FieldKey, "id", "type", "attributes", "relationships", "links", "meta")},
		Recommended: true,
		Link:        link("document-resource-objects"),
	},
	{
		ID:          "jsonapi-attributes-reserved-names",
		Description: "Attributes must not be named id, type, relationships or links.",
		Message:     "`{{value}}` is reserved and cannot be used as an attribute name.",
		Category:    CategoryResourceObjects,
		Severity:    validation.SeverityError,
		Given:       attributes,
		Then:        []spectral.Then{notMatches(spectral.FieldKey, `^(id|type|relationships|links)$`)},
		Recommended: true,
		Link:        link("document-resource-object-fields"),
	},
	{
		ID:          "jsonapi-relationships-reserved-names",
		Description: "Relationships must not be named id or type.",
		Message:     "`{{value}}` is reserved and cannot be used as a relationship name.",
		Category:    CategoryResourceObjects,
		Severity:    validation.SeverityError,
		Given:       relationships,
		Then:        []spectral.Then{notMatches(spectral.FieldKey, `^(id|type)$`)},
		Recommended: true,
		Link:        link("document-resource-object-fields"),
	},
	{
		ID:          "jsonapi-relationship-object",
		Description: "A relationship object must contain at least one of links, data or meta.",
		Message:     "Relationship objects must contain at least one of `links`, `data` or `meta`.",
		Category:    CategoryResourceObjects,
		Severity:    validation.SeverityError,
		Given:       under(relationshipObjects, ".properties"),
		Then: []spectral.Then{
			requiresAny("links", "data", "meta"),
			propertyType("links", "object"),
			propertyType("meta", "object"),
		},
		Recommended: true,
		Link:        link("document-resource-object-relationships"),
	},
	{
		ID:          "jsonapi-resource-identifier",
		Description: "Resource linkage must be made of resource identifier objects with id and type.",
		Message:     "Resource identifier objects must contain `{{property}}`.",
		Category:    CategoryResourceObjects,
		Severity:    validation.SeverityError,
		Given:       resourceLinkage,
		Then: []spectral.Then{
			check("id", "defined"),
			check("type", "defined"),
		},
		Recommended: true,
		Link:        link("document-resource-identifier-objects"),
	},
}
