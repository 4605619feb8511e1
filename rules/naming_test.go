package rules_test

import (
	"testing"

	"github.com/openapi-jsonapi/jsonapi-lint/internal/testutils"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const namingDocument = `openapi: 3.1.0
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
            application/vnd.api+json:
              schema:
                type: object
                properties:
                  meta:
                    type: object
                    properties:
                      total-count:
                        type: integer
                  data:
                    type: object
                    properties:
                      type:
                        type: string
                        enum: [articles, 'blog posts!']
                      attributes:
                        type: object
                        properties:
                          title:
                            type: string
                          _draft:
                            type: boolean
                          créé:
                            type: string
                      relationships:
                        type: object
                        properties:
                          author_:
                            type: object
`

func TestNamingRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule string
		want []string
	}{
		{
			name: "member names",
			rule: "jsonapi-member-names",
			want: []string{
				"`_draft` is not a valid member name.",
				"`author_` is not a valid member name.",
			},
		},
		{
			name: "camel case",
			rule: "jsonapi-member-names-camel-case",
			want: []string{
				"`total-count` should be camelCase.",
				"`_draft` should be camelCase.",
				"`créé` should be camelCase.",
				"`author_` should be camelCase.",
			},
		},
		{
			name: "resource type values",
			rule: "jsonapi-resource-type-name",
			want: []string{"Resource type `blog posts!` is not a valid member name."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ElementsMatch(t, tt.want, testutils.Messages(t, namingDocument, tt.rule))
		})
	}
}

func TestCamelCase_IsHint(t *testing.T) {
	t.Parallel()

	findings := testutils.Findings(t, namingDocument, "jsonapi-member-names-camel-case")
	require.NotEmpty(t, findings)

	for _, f := range findings {
		assert.Equal(t, validation.SeverityHint, f.Severity)
	}
}
