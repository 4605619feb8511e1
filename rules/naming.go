package rules

import (
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

// memberNamePattern matches the characters allowed in member names. Hyphen,
// underscore and space may not appear first or last.
const memberNamePattern = `^[a-zA-Z0-9\x{0080}-\x{10FFFF}]([a-zA-Z0-9\x{0080}-\x{10FFFF}_ -]*[a-zA-Z0-9\x{0080}-\x{10FFFF}])?$`

// memberNames select the mappings whose keys become JSON:API member names.
var memberNames = join(attributes, relationships, under(resources, ".meta.properties"), under(documents, ".properties.meta.properties"))

var namingRules = []spectral.Definition{
	{
		ID:          "jsonapi-member-names",
		Description: "Member names must contain only a-z, A-Z, 0-9, non-ASCII characters, hyphen, underscore and space, and must not start or end with hyphen, underscore or space.",
		Message:     "`{{value}}` is not a valid member name.",
		Category:    CategoryNaming,
		Severity:    validation.SeverityError,
		Given:       memberNames,
		Then:        []spectral.Then{matches(spectral.FieldKey, memberNamePattern)},
		Recommended: true,
		Link:        link("document-member-names"),
		GoodExample: `attributes:
  properties:
    title:
      type: string
    published-at:
      type: string`,
		BadExample: `attributes:
  properties:
    _title:
      type: string`,
	},
	{
		ID:          "jsonapi-member-names-camel-case",
		Description: "Member names should be camelCase.",
		Message:     "`{{value}}` should be camelCase.",
		Category:    CategoryNaming,
		Severity:    validation.SeverityHint,
		Given:       memberNames,
		Then:        []spectral.Then{matches(spectral.FieldKey, `^[a-z][a-zA-Z0-9]*$`)},
		Recommended: true,
		Link:        "https://jsonapi.org/recommendations/#naming",
	},
	{
		ID:          "jsonapi-resource-type-name",
		Description: "Resource type values declared by enum or const must be valid member names.",
		Message:     "Resource type `{{value}}` is not a valid member name.",
		Category:    CategoryNaming,
		Severity:    validation.SeverityWarning,
		Given:       under(resources, ".type"),
		Then: []spectral.Then{
			matches("const", memberNamePattern),
			matches("$.enum[*]", memberNamePattern),
		},
		Recommended: true,
		Link:        link("document-resource-object-identification"),
	},
}
