package rules_test

import (
	"testing"

	"github.com/openapi-jsonapi/jsonapi-lint/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusCodesDocument = `openapi: 3.1.0
info:
  title: Articles
  version: '1.0'
paths:
  /articles:
    get:
      responses:
        '200':
          description: OK
        '400':
          description: Bad Request
        '404':
          description: Not Found
        '500':
          description: Internal Server Error
    post:
      requestBody:
        content:
          application/vnd.api+json: {}
      responses:
        '201':
          description: Created
        '204':
          description: No Content
          content:
            application/vnd.api+json: {}
        '2xx':
          description: Created
        '500':
          description: Internal Server Error
        '503':
          description: Service Unavailable
        x-retry-after: 30
  /articles/{id}:
    x-draft:
      requestBody:
        content:
          application/vnd.api+json: {}
      responses:
        '200':
          description: OK
`

func TestStatusCodeRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule string
		want []string
	}{
		{
			name: "multiple 4xx codes",
			rule: "jsonapi-no-multiple-4xx",
			want: []string{"Multiple 4xx status codes are not allowed in the same response."},
		},
		{
			name: "multiple 5xx codes",
			rule: "jsonapi-no-multiple-5xx",
			want: []string{"Multiple 5xx status codes are not allowed in the same response."},
		},
		{
			name: "status code format",
			rule: "jsonapi-status-code-format",
			want: []string{"`2xx` is not a valid response status code."},
		},
		{
			name: "204 with content",
			rule: "jsonapi-no-content-204",
			want: []string{"A 204 response must not declare content."},
		},
		{
			name: "missing 409",
			rule: "jsonapi-conflict-409",
			want: []string{"POST operations should declare a 409 response."},
		},
		{
			name: "missing 415",
			rule: "jsonapi-unsupported-media-type-415",
			want: []string{"Operations with a request body should declare a 415 response."},
		},
		{
			name: "missing 406",
			rule: "jsonapi-not-acceptable-406",
			want: []string{
				"Operations should declare a 406 response.",
				"Operations should declare a 406 response.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ElementsMatch(t, tt.want, testutils.Messages(t, statusCodesDocument, tt.rule))
		})
	}
}

func TestNoMultiple4xx_Location(t *testing.T) {
	t.Parallel()

	findings := testutils.Findings(t, statusCodesDocument, "jsonapi-no-multiple-4xx")
	require.Len(t, findings, 1)

	assert.Equal(t, "/paths/~1articles/get/responses", findings[0].Pointer)
}

func TestNoMultiple5xx_OnePerResponses(t *testing.T) {
	t.Parallel()

	findings := testutils.Findings(t, statusCodesDocument, "jsonapi-no-multiple-5xx")
	require.Len(t, findings, 1)

	assert.Equal(t, "/paths/~1articles/post/responses", findings[0].Pointer)
}

func TestStatusCodeFormat_AllowsExtensions(t *testing.T) {
	t.Parallel()

	findings := testutils.Findings(t, statusCodesDocument, "jsonapi-status-code-format")
	require.Len(t, findings, 1)

	assert.Equal(t, "/paths/~1articles/post/responses/2xx", findings[0].Pointer)
}

func TestUnsupportedMediaType415_OperationsOnly(t *testing.T) {
	t.Parallel()

	findings := testutils.Findings(t, statusCodesDocument, "jsonapi-unsupported-media-type-415")
	require.Len(t, findings, 1)

	assert.Equal(t, "/paths/~1articles/post/responses/415", findings[0].Pointer)
}
