package functions_test

import (
	"testing"

	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseNode(t *testing.T, src string) *yaml.Node {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.NotEmpty(t, doc.Content)
	return doc.Content[0]
}

func prepare(t *testing.T, fn functions.Function, options map[string]any) functions.Prepared {
	t.Helper()

	p, err := fn.Prepare(options)
	require.NoError(t, err)
	return p
}
