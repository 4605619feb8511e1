package functions_test

import (
	"testing"

	"github.com/openapi-jsonapi/jsonapi-lint/errors"
	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yaml     string
		options  map[string]any
		expected []string
	}{
		{
			name:    "property absent",
			yaml:    `{"data": {"type": "object"}}`,
			options: map[string]any{"propertyName": "errors", "propertyType": "array"},
		},
		{
			name:    "type matches",
			yaml:    `{"errors": {"type": "array"}}`,
			options: map[string]any{"propertyName": "errors", "propertyType": "array"},
		},
		{
			name:     "type differs",
			yaml:     `{"errors": {"type": "object"}}`,
			options:  map[string]any{"propertyName": "errors", "propertyType": "array"},
			expected: []string{"Property `errors` should be of type `array`, but found `object`."},
		},
		{
			name:     "type missing",
			yaml:     `{"meta": {"properties": {}}}`,
			options:  map[string]any{"propertyName": "meta", "propertyType": "object"},
			expected: []string{"Property `meta` should be of type `object`, but found `undefined`."},
		},
		{
			name:     "type list",
			yaml:     `{"links": {"type": ["object", "null"]}}`,
			options:  map[string]any{"propertyName": "links", "propertyType": "object"},
			expected: []string{"Property `links` should be of type `object`, but found `[\"object\",\"null\"]`."},
		},
		{
			name:    "non-mapping target",
			yaml:    `"errors"`,
			options: map[string]any{"propertyName": "errors", "propertyType": "array"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := prepare(t, functions.PropertyType, tt.options)
			results := p.Run(parseNode(t, tt.yaml), &functions.Context{Path: []string{"properties"}})

			var messages []string
			for _, r := range results {
				messages = append(messages, r.Message)
				assert.Empty(t, r.Path)
			}
			assert.Equal(t, tt.expected, messages)
		})
	}
}

func TestPropertyType_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options map[string]any
	}{
		{name: "missing options", options: nil},
		{name: "missing propertyType", options: map[string]any{"propertyName": "errors"}},
		{name: "wrong option type", options: map[string]any{"propertyName": "errors", "propertyType": 1}},
		{name: "unknown option", options: map[string]any{"propertyName": "errors", "propertyType": "array", "strict": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := functions.PropertyType.Prepare(tt.options)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidOptions)
			assert.Contains(t, err.Error(), "propertyType")
		})
	}
}
