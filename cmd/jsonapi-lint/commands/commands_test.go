package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlesDocument = `openapi: 3.1.0
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
            application/json:
              schema:
                type: object
                properties:
                  data:
                    type: array
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestLintCmd_Text(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "openapi.yaml", articlesDocument)
	config := writeFile(t, dir, "lint.yaml", "extends: recommended\n")

	stdout, stderr, err := execute(t, newLintCmd(), "", doc, "--config", config, "--summary")

	require.ErrorIs(t, err, ErrFindings)
	assert.Contains(t, stderr, "Linting OpenAPI document")
	assert.Contains(t, stdout, "jsonapi-media-type-response")
	assert.Contains(t, stdout, "Response media type `application/json` is not application/vnd.api+json.")
}

func TestLintCmd_JSONWithDisabledRule(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "openapi.yaml", articlesDocument)
	config := writeFile(t, dir, "lint.yaml", "extends: recommended\n")

	stdout, _, err := execute(t, newLintCmd(), "", doc,
		"--config", config,
		"--format", "json",
		"--disable", "jsonapi-media-type-response",
		"--disable", "jsonapi-not-acceptable-406",
	)
	require.NoError(t, err)

	var output struct {
		Results []struct {
			Rule string `json:"rule"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	for _, r := range output.Results {
		assert.NotEqual(t, "jsonapi-media-type-response", r.Rule)
	}
}

func TestLintCmd_Stdin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := writeFile(t, dir, "lint.yaml", "rules:\n  - id: jsonapi-media-type-response\n    severity: warning\n")

	stdout, _, err := execute(t, newLintCmd(), articlesDocument, "-", "--config", config, "--ruleset", "recommended")

	require.NoError(t, err)
	assert.Contains(t, stdout, "stdin")
	assert.Contains(t, stdout, "jsonapi-media-type-response")
}

func TestLintCmd_CustomRuleset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "openapi.yaml", articlesDocument)
	writeFile(t, dir, "jsonapi.yaml", `rules:
  jsonapi-media-type-response: off
  operation-summary:
    description: Operations must have a summary
    message: "{{description}}"
    severity: error
    given: "$.paths[*][*]"
    then:
      field: summary
      function: truthy
`)
	config := writeFile(t, dir, "lint.yaml", "custom_rules:\n  paths:\n    - jsonapi.yaml\n")

	stdout, _, err := execute(t, newLintCmd(), "", doc, "--config", config)

	require.ErrorIs(t, err, ErrFindings)
	assert.Contains(t, stdout, "operation-summary")
	assert.NotContains(t, stdout, "jsonapi-media-type-response")
}

func TestLintCmd_UnsupportedFormat_Error(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, newLintCmd(), "", "openapi.yaml", "--format", "sarif")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestLintCmd_InvalidDocument_Error(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "openapi.yaml", "- not\n- a mapping\n")
	config := writeFile(t, dir, "lint.yaml", "extends: recommended\n")

	_, _, err := execute(t, newLintCmd(), "", doc, "--config", config)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFindings)
}

func TestListRulesCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "text grouped by category",
			args:     nil,
			contains: []string{"MEDIA-TYPE (", "NAMING (", "jsonapi-no-multiple-4xx", "rules total"},
		},
		{
			name:     "category filter",
			args:     []string{"--category", "error-objects"},
			contains: []string{"ERROR-OBJECTS (", "jsonapi-error-object-member-types"},
			excludes: []string{"MEDIA-TYPE ("},
		},
		{
			name:     "ruleset filter",
			args:     []string{"--ruleset", "recommended"},
			contains: []string{"jsonapi-no-put"},
			excludes: []string{"jsonapi-conflict-409"},
		},
		{
			name:     "markdown",
			args:     []string{"--format", "markdown"},
			contains: []string{"# JSON:API Lint Rules Reference", "## status-codes"},
		},
		{
			name:     "no matches",
			args:     []string{"--category", "does-not-exist"},
			contains: []string{"No rules found matching the specified filters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, newListRulesCmd(), "", tt.args...)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, stdout, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, stdout, unwanted)
			}
		})
	}
}

func TestListRulesCmd_JSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, newListRulesCmd(), "", "--format", "json", "--category", "naming")
	require.NoError(t, err)

	var output struct {
		Rules []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	require.NotEmpty(t, output.Rules)
	for _, r := range output.Rules {
		assert.Equal(t, "naming", r.Category)
	}
}

func TestExportRulesetCmd(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, newExportRulesetCmd(), "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "functions:"))
	assert.Contains(t, stdout, "noMultiple4xxStatusCodes")
	assert.Contains(t, stdout, "jsonapi-no-multiple-4xx:")
}

func TestExportRulesetCmd_OutputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".spectral.yaml")

	stdout, stderr, err := execute(t, newExportRulesetCmd(), "", "-o", path)
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "propertyType")
}
