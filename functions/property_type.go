package functions

import (
	"fmt"

	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

const NamePropertyType = "propertyType"

// PropertyTypeOptions configures propertyType.
type PropertyTypeOptions struct {
	PropertyName string `json:"propertyName"`
	PropertyType string `json:"propertyType"`
}

// PropertyType checks that a schema property declares the expected type.
// A target without the property passes; presence is a separate concern.
var PropertyType = New(NamePropertyType, `{
	"type": "object",
	"properties": {
		"propertyName": {"type": "string", "minLength": 1},
		"propertyType": {"type": "string", "minLength": 1}
	},
	"required": ["propertyName", "propertyType"],
	"additionalProperties": false
}`, propertyType)

func propertyType(target *yaml.Node, opts *PropertyTypeOptions, fctx *Context) []Result {
	property := yml.GetMapValue(target, opts.PropertyName)
	if property == nil {
		return nil
	}

	actualNode := yml.Unwrap(yml.GetMapValue(property, "type"))
	if actualNode != nil && actualNode.Kind == yaml.ScalarNode && actualNode.Value == opts.PropertyType {
		return nil
	}

	return []Result{{
		Message: fmt.Sprintf("Property `%s` should be of type `%s`, but found `%s`.", opts.PropertyName, opts.PropertyType, yml.Render(actualNode)),
	}}
}
