package functions

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

// LengthOptions configures length. At least one bound is required.
type LengthOptions struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Length bounds the size of strings, collections and the value of numbers.
var Length = New("length", `{
	"type": "object",
	"properties": {
		"min": {"type": "number"},
		"max": {"type": "number"}
	},
	"anyOf": [{"required": ["min"]}, {"required": ["max"]}],
	"additionalProperties": false
}`, length).WithPrepare(func(opts *LengthOptions) error {
	if opts.Min != nil && opts.Max != nil && *opts.Min > *opts.Max {
		return fmt.Errorf("min %v is greater than max %v", *opts.Min, *opts.Max)
	}
	return nil
})

func length(target *yaml.Node, opts *LengthOptions, _ *Context) []Result {
	size, ok := measure(target)
	if !ok {
		return nil
	}

	var results []Result
	if opts.Min != nil && size < *opts.Min {
		results = append(results, Result{Message: fmt.Sprintf("{{property}} must be longer than %v", *opts.Min)})
	}
	if opts.Max != nil && size > *opts.Max {
		results = append(results, Result{Message: fmt.Sprintf("{{property}} must be shorter than %v", *opts.Max)})
	}
	return results
}

func measure(node *yaml.Node) (float64, bool) {
	node = yml.Unwrap(node)
	if node == nil {
		return 0, false
	}

	switch node.Kind {
	case yaml.MappingNode:
		return float64(len(node.Content) / 2), true
	case yaml.SequenceNode:
		return float64(len(node.Content)), true
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null", "!!bool":
			return 0, false
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return 0, false
			}
			return f, true
		default:
			return float64(utf8.RuneCountInString(node.Value)), true
		}
	default:
		return 0, false
	}
}
