package functions

import (
	"fmt"
	"slices"
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

// EnumerationOptions configures enumeration.
type EnumerationOptions struct {
	Values []any `json:"values"`

	allowed []string
}

// Enumeration checks that a scalar is one of a fixed set of values.
var Enumeration = New("enumeration", `{
	"type": "object",
	"properties": {
		"values": {
			"type": "array",
			"items": {"type": ["string", "number", "boolean", "null"]}
		}
	},
	"required": ["values"],
	"additionalProperties": false
}`, enumeration).WithPrepare(func(opts *EnumerationOptions) error {
	opts.allowed = make([]string, 0, len(opts.Values))
	for _, v := range opts.Values {
		if v == nil {
			opts.allowed = append(opts.allowed, "null")
			continue
		}
		opts.allowed = append(opts.allowed, fmt.Sprint(v))
	}
	return nil
})

func enumeration(target *yaml.Node, opts *EnumerationOptions, _ *Context) []Result {
	target = yml.Unwrap(target)
	if target == nil || target.Kind != yaml.ScalarNode {
		return nil
	}

	value := target.Value
	if target.Tag == "!!null" {
		value = "null"
	}
	if slices.Contains(opts.allowed, value) {
		return nil
	}

	return []Result{{Message: fmt.Sprintf("{{value}} must be one of the allowed values: %s", strings.Join(opts.allowed, ", "))}}
}
