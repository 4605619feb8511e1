package functions_test

import (
	"testing"

	"github.com/openapi-jsonapi/jsonapi-lint/errors"
	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoMultipleStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       functions.Function
		yaml     string
		expected []functions.Result
	}{
		{
			name: "single 4xx alongside success",
			fn:   functions.NoMultiple4xxStatusCodes,
			yaml: `{"400": {}, "200": {}}`,
		},
		{
			name: "two 4xx codes",
			fn:   functions.NoMultiple4xxStatusCodes,
			yaml: `{"400": {}, "404": {}}`,
			expected: []functions.Result{{
				Message: "Multiple 4xx status codes are not allowed in the same response.",
				Path:    []string{"paths", "/articles", "get", "responses"},
			}},
		},
		{
			name: "two 5xx codes",
			fn:   functions.NoMultiple5xxStatusCodes,
			yaml: `{"500": {}, "503": {}}`,
			expected: []functions.Result{{
				Message: "Multiple 5xx status codes are not allowed in the same response.",
				Path:    []string{"paths", "/articles", "get", "responses"},
			}},
		},
		{
			name: "two 4xx codes ignored by 5xx checker",
			fn:   functions.NoMultiple5xxStatusCodes,
			yaml: `{"400": {}, "404": {}, "500": {}}`,
		},
		{
			name: "empty responses",
			fn:   functions.NoMultiple4xxStatusCodes,
			yaml: `{}`,
		},
		{
			name: "malformed keys count by first character",
			fn:   functions.NoMultiple4xxStatusCodes,
			yaml: `{"4XX": {}, "4oops": {}, "default": {}}`,
			expected: []functions.Result{{
				Message: "Multiple 4xx status codes are not allowed in the same response.",
				Path:    []string{"paths", "/articles", "get", "responses"},
			}},
		},
		{
			name: "three 4xx codes still yield one result",
			fn:   functions.NoMultiple4xxStatusCodes,
			yaml: `{"400": {}, "401": {}, "404": {}}`,
			expected: []functions.Result{{
				Message: "Multiple 4xx status codes are not allowed in the same response.",
				Path:    []string{"paths", "/articles", "get", "responses"},
			}},
		},
		{
			name: "non-mapping target",
			fn:   functions.NoMultiple4xxStatusCodes,
			yaml: `["400", "404"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := prepare(t, tt.fn, nil)
			fctx := &functions.Context{Path: []string{"paths", "/articles", "get", "responses"}}

			results := p.Run(parseNode(t, tt.yaml), fctx)
			assert.Equal(t, tt.expected, results)
		})
	}
}

func TestNoMultipleStatusCodes_Idempotent(t *testing.T) {
	t.Parallel()

	p := prepare(t, functions.NoMultiple4xxStatusCodes, nil)
	node := parseNode(t, `{"400": {}, "404": {}}`)
	fctx := &functions.Context{Path: []string{"responses"}}

	first := p.Run(node, fctx)
	second := p.Run(node, fctx)
	require.Len(t, first, 1)
	assert.Equal(t, first, second)
}

func TestNoMultipleStatusCodes_NilTarget(t *testing.T) {
	t.Parallel()

	p := prepare(t, functions.NoMultiple5xxStatusCodes, map[string]any{})
	assert.Empty(t, p.Run(nil, nil))
}

func TestNoMultipleStatusCodes_RejectsOptions(t *testing.T) {
	t.Parallel()

	_, err := functions.NoMultiple4xxStatusCodes.Prepare(map[string]any{"threshold": 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidOptions)
}
