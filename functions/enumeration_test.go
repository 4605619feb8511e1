package functions_test

import (
	"testing"

	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumeration(t *testing.T) {
	t.Parallel()

	p := prepare(t, functions.Enumeration, map[string]any{"values": []any{"application/vnd.api+json", 1, true}})

	tests := []struct {
		yaml  string
		fails bool
	}{
		{yaml: `application/vnd.api+json`},
		{yaml: `application/json`, fails: true},
		{yaml: `1`},
		{yaml: `true`},
		{yaml: `null`, fails: true},
		{yaml: `[application/json]`},
	}

	for _, tt := range tests {
		t.Run(tt.yaml, func(t *testing.T) {
			t.Parallel()

			results := p.Run(parseNode(t, tt.yaml), nil)
			if tt.fails {
				require.Len(t, results, 1)
				assert.Contains(t, results[0].Message, "application/vnd.api+json")
			} else {
				assert.Empty(t, results)
			}
		})
	}
}

func TestEnumeration_RequiresValues(t *testing.T) {
	t.Parallel()

	_, err := functions.Enumeration.Prepare(map[string]any{"value": []any{"a"}})
	assert.Error(t, err)
}
