package linter_test

import (
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/openapi-jsonapi/jsonapi-lint/linter"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRuleConfig_GetSeverity(t *testing.T) {
	t.Parallel()

	t.Run("returns configured severity when set", func(t *testing.T) {
		t.Parallel()

		warningSeverity := validation.SeverityWarning
		config := linter.RuleConfig{Severity: &warningSeverity}

		assert.Equal(t, validation.SeverityWarning, config.GetSeverity(validation.SeverityError))
	})

	t.Run("returns default severity when not set", func(t *testing.T) {
		t.Parallel()

		config := linter.RuleConfig{}

		assert.Equal(t, validation.SeverityError, config.GetSeverity(validation.SeverityError))
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		var config *linter.RuleConfig

		assert.Equal(t, validation.SeverityHint, config.GetSeverity(validation.SeverityHint))
		assert.NotNil(t, config.GetLogger())
	})
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	config := linter.NewConfig()
	assert.Equal(t, linter.OutputFormatText, config.OutputFormat)
	assert.NotNil(t, config.Rules)
	assert.NotNil(t, config.Categories)
	assert.Equal(t, []string{"all"}, config.Extends)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	config, err := linter.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, []string{"all"}, config.Extends)
	assert.Equal(t, linter.OutputFormatText, config.OutputFormat)
	assert.Empty(t, config.Rules)
}

func TestLoadConfig_ExtendsString(t *testing.T) {
	t.Parallel()

	config, err := linter.LoadConfig(strings.NewReader(`extends: recommended`))
	require.NoError(t, err)
	assert.Equal(t, []string{"recommended"}, config.Extends)
}

func TestLoadConfig_ExtendsList(t *testing.T) {
	t.Parallel()

	configYAML := `extends:
  - recommended
  - all`
	config, err := linter.LoadConfig(strings.NewReader(configYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"recommended", "all"}, config.Extends)
}

func TestLoadConfig_RuleEntries(t *testing.T) {
	t.Parallel()

	configYAML := `rules:
  - id: jsonapi-error-object-members
    match: ".*title.*"
    severity: warn
  - id: jsonapi-member-names-camel-case
    disabled: true
categories:
  naming:
    severity: hint
output_format: json`
	config, err := linter.LoadConfig(strings.NewReader(configYAML))
	require.NoError(t, err)
	require.Len(t, config.Rules, 2)

	require.NotNil(t, config.Rules[0].Match)
	assert.Equal(t, regexp.MustCompile(".*title.*").String(), config.Rules[0].Match.String())
	require.NotNil(t, config.Rules[0].Severity)
	assert.Equal(t, validation.SeverityWarning, *config.Rules[0].Severity)

	require.NotNil(t, config.Rules[1].Disabled)
	assert.True(t, *config.Rules[1].Disabled)
	assert.Nil(t, config.Rules[1].Match)

	require.NotNil(t, config.Categories["naming"].Severity)
	assert.Equal(t, validation.SeverityHint, *config.Categories["naming"].Severity)
	assert.Equal(t, linter.OutputFormatJSON, config.OutputFormat)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{name: "invalid match", yaml: "rules:\n  - id: x\n    match: \"(\"", contains: "invalid match expression"},
		{name: "missing id", yaml: "rules:\n  - severity: error", contains: "rule entry missing id"},
		{name: "bad severity", yaml: "rules:\n  - id: x\n    severity: loud", contains: "loud"},
		{name: "bad output format", yaml: "output_format: xml", contains: "xml"},
		{name: "bad extends", yaml: "extends: {a: b}", contains: "extends"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := linter.LoadConfig(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadConfig_CustomRulesRoundTrip(t *testing.T) {
	t.Parallel()

	configYAML := `extends: all
custom_rules:
  paths:
    - "./rules/*.yaml"
    - "./extra/*.yaml"`
	config, err := linter.LoadConfig(strings.NewReader(configYAML))
	require.NoError(t, err)
	require.NotNil(t, config.CustomRules)
	assert.Equal(t, []string{"./rules/*.yaml", "./extra/*.yaml"}, config.CustomRules.Paths)

	out, err := yaml.Marshal(config)
	require.NoError(t, err)
	reloaded, err := linter.LoadConfig(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, config.CustomRules, reloaded.CustomRules)
}

func TestLoadConfigFromFile_ResolvesCustomRulePaths(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"project/.jsonapi-lint/lint.yaml": &fstest.MapFile{Data: []byte("custom_rules:\n  paths:\n    - rules/*.yaml\n")},
	}

	config, err := linter.LoadConfigFromFile(fsys, "project/.jsonapi-lint/lint.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"project/.jsonapi-lint/rules/*.yaml"}, config.CustomRules.Paths)

	_, err = linter.LoadConfigFromFile(fsys, "missing.yaml")
	assert.Error(t, err)
}

func TestConfig_ValidateMissingRuleID(t *testing.T) {
	t.Parallel()

	config := &linter.Config{
		Rules: []linter.RuleEntry{{}, {}},
	}

	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rules[0]: rule entry missing id")
	assert.Contains(t, err.Error(), "rules[1]: rule entry missing id")
}
