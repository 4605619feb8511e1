package rules_test

import (
	"testing"

	"github.com/openapi-jsonapi/jsonapi-lint/internal/testutils"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mediaTypeDocument = `openapi: 3.0.3
info:
  title: Articles
  version: '1.0'
paths:
  /articles:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
      responses:
        '201':
          description: Created
          content:
            application/vnd.api+json:
              schema:
                type: object
            application/vnd.api+json; ext=bulk:
              schema:
                type: object
components:
  responses:
    Error:
      description: Error
      content:
        text/plain:
          schema:
            type: string
`

func TestMediaTypeRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule string
		want []string
	}{
		{
			name: "request media type",
			rule: "jsonapi-media-type-request",
			want: []string{"Request media type `application/json` is not application/vnd.api+json."},
		},
		{
			name: "response media type",
			rule: "jsonapi-media-type-response",
			want: []string{
				"Response media type `application/vnd.api+json; ext=bulk` is not application/vnd.api+json.",
				"Response media type `text/plain` is not application/vnd.api+json.",
			},
		},
		{
			name: "media type parameters",
			rule: "jsonapi-media-type-parameters",
			want: []string{"Media type `application/vnd.api+json; ext=bulk` must not specify parameters."},
		},
		{
			name: "single media type",
			rule: "jsonapi-media-type-single",
			want: []string{"Content should declare exactly one media type."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ElementsMatch(t, tt.want, testutils.Messages(t, mediaTypeDocument, tt.rule))
		})
	}
}

func TestMediaTypeRequest_Location(t *testing.T) {
	t.Parallel()

	findings := testutils.Findings(t, mediaTypeDocument, "jsonapi-media-type-request")
	require.Len(t, findings, 1)

	assert.Equal(t, validation.SeverityError, findings[0].Severity)
	assert.Equal(t, "/paths/~1articles/post/requestBody/content/application~1json", findings[0].Pointer)
	assert.Equal(t, 10, findings[0].Line)
}

func TestMediaTypeRules_SkipsSwagger(t *testing.T) {
	t.Parallel()

	doc := `swagger: '2.0'
info:
  title: Articles
  version: '1.0'
paths:
  /articles:
    get:
      responses:
        '200':
          description: OK
          content:
            application/json: {}
`
	assert.Empty(t, testutils.Lint(t, doc, "jsonapi-media-type-response"))
}
