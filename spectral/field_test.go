package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSplitFieldPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr     string
		expected []string
		wantErr  bool
	}{
		{expr: "data", expected: []string{"data"}},
		{expr: "data.attributes.title", expected: []string{"data", "attributes", "title"}},
		{expr: "content['application/vnd.api+json'].schema", expected: []string{"content", "application/vnd.api+json", "schema"}},
		{expr: `responses["400"]`, expected: []string{"responses", "400"}},
		{expr: "items[0].type", expected: []string{"items", "0", "type"}},
		{expr: "a[b", wantErr: true},
		{expr: "a[]", wantErr: true},
		{expr: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			got, err := splitFieldPath(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderMessage(t *testing.T) {
	t.Parallel()

	value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "application/json"}

	tests := []struct {
		name     string
		template string
		data     messageData
		expected string
	}{
		{
			name:     "default template",
			data:     messageData{err: "{{property}} must be truthy", path: []string{"info", "title"}},
			expected: "title must be truthy",
		},
		{
			name:     "root property",
			data:     messageData{err: "{{property}} must be defined"},
			expected: "value must be defined",
		},
		{
			name:     "all placeholders",
			template: "{{description}} at {{path}}: {{value}} ({{error}})",
			data:     messageData{err: "bad", description: "Media type", path: []string{"content", "application/json"}, value: value},
			expected: "Media type at content.application/json: application/json (bad)",
		},
		{
			name:     "missing value",
			template: "{{value}}",
			expected: "undefined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, renderMessage(tt.template, tt.data))
		})
	}
}
