package linter

import (
	"fmt"
	"regexp"

	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config represents the linter configuration
type Config struct {
	// Extends specifies rulesets to extend (e.g., "recommended", "all").
	// A single string is accepted in YAML.
	Extends []string `yaml:"extends,omitempty" json:"extends,omitempty"`

	// Rules contains per-rule entries, applied in order
	Rules []RuleEntry `yaml:"rules,omitempty" json:"rules,omitempty"`

	// Categories contains per-category configuration
	Categories map[string]CategoryConfig `yaml:"categories,omitempty" json:"categories,omitempty"`

	// CustomRules lists Spectral rulesets to load alongside the built-in rules
	CustomRules *CustomRulesConfig `yaml:"custom_rules,omitempty" json:"custom_rules,omitempty"`

	// OutputFormat specifies the output format
	OutputFormat OutputFormat `yaml:"output_format,omitempty" json:"output_format,omitempty"`
}

// RuleEntry configures a rule. An entry with Match only applies to findings
// whose message matches the expression.
type RuleEntry struct {
	ID       string               `yaml:"id" json:"id"`
	Severity *validation.Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
	Disabled *bool                `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Match    *regexp.Regexp       `yaml:"-" json:"-"`
}

type rawRuleEntry struct {
	ID       string               `yaml:"id"`
	Severity *validation.Severity `yaml:"severity,omitempty"`
	Disabled *bool                `yaml:"disabled,omitempty"`
	Match    string               `yaml:"match,omitempty"`
}

func (e *RuleEntry) UnmarshalYAML(value *yaml.Node) error {
	var raw rawRuleEntry
	if err := value.Decode(&raw); err != nil {
		return err
	}

	e.ID = raw.ID
	e.Severity = raw.Severity
	e.Disabled = raw.Disabled
	e.Match = nil
	if raw.Match != "" {
		re, err := regexp.Compile(raw.Match)
		if err != nil {
			return fmt.Errorf("rule %q: invalid match expression: %w", raw.ID, err)
		}
		e.Match = re
	}
	return nil
}

func (e RuleEntry) MarshalYAML() (any, error) {
	raw := rawRuleEntry{ID: e.ID, Severity: e.Severity, Disabled: e.Disabled}
	if e.Match != nil {
		raw.Match = e.Match.String()
	}
	return raw, nil
}

// appliesToRule reports whether the entry configures the rule as a whole rather
// than a subset of its findings.
func (e *RuleEntry) appliesToRule() bool {
	return e.Match == nil
}

// RuleConfig is the effective configuration handed to a running rule
type RuleConfig struct {
	// Severity overrides the default severity
	Severity *validation.Severity `yaml:"severity,omitempty" json:"severity,omitempty"`

	// Logger is set by the engine when running rules
	Logger Logger `yaml:"-" json:"-"`
}

// GetSeverity returns the effective severity, falling back to default if not overridden
func (c *RuleConfig) GetSeverity(defaultSeverity validation.Severity) validation.Severity {
	if c != nil && c.Severity != nil {
		return *c.Severity
	}
	return defaultSeverity
}

// GetLogger returns the configured logger or a no-op logger
func (c *RuleConfig) GetLogger() Logger {
	if c != nil && c.Logger != nil {
		return c.Logger
	}
	return NopLogger()
}

// CategoryConfig configures an entire category of rules
type CategoryConfig struct {
	// Enabled controls whether all rules in the category are active
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`

	// Severity overrides the default severity for all rules in the category
	Severity *validation.Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
}

// CustomRulesConfig points at Spectral rulesets on disk
type CustomRulesConfig struct {
	// Paths are file paths or glob patterns
	Paths []string `yaml:"paths,omitempty" json:"paths,omitempty"`
}

type OutputFormat string

const (
	OutputFormatText    OutputFormat = "text"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatSummary OutputFormat = "summary"
)

// NewConfig creates a new default configuration
func NewConfig() *Config {
	return &Config{
		Extends:      []string{RulesetAll},
		Rules:        []RuleEntry{},
		Categories:   make(map[string]CategoryConfig),
		OutputFormat: OutputFormatText,
	}
}

type rawConfig struct {
	Extends      yaml.Node                 `yaml:"extends"`
	Rules        []RuleEntry               `yaml:"rules"`
	Categories   map[string]CategoryConfig `yaml:"categories"`
	CustomRules  *CustomRulesConfig        `yaml:"custom_rules"`
	OutputFormat OutputFormat              `yaml:"output_format"`
}

func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw rawConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}

	var extends []string
	switch raw.Extends.Kind {
	case 0:
	case yaml.ScalarNode:
		if raw.Extends.Tag != "!!null" && raw.Extends.Value != "" {
			extends = []string{raw.Extends.Value}
		}
	case yaml.SequenceNode:
		if err := raw.Extends.Decode(&extends); err != nil {
			return fmt.Errorf("extends: %w", err)
		}
	default:
		return fmt.Errorf("extends: expected string or list, got %s", raw.Extends.Tag)
	}

	*c = Config{
		Extends:      extends,
		Rules:        raw.Rules,
		Categories:   raw.Categories,
		CustomRules:  raw.CustomRules,
		OutputFormat: raw.OutputFormat,
	}
	return nil
}

// Validate checks the configuration for entries that can never apply.
func (c *Config) Validate() error {
	var err error
	for i, entry := range c.Rules {
		if entry.ID == "" {
			err = multierr.Append(err, fmt.Errorf("rules[%d]: rule entry missing id", i))
		}
	}
	switch c.OutputFormat {
	case "", OutputFormatText, OutputFormatJSON, OutputFormatSummary:
	default:
		err = multierr.Append(err, fmt.Errorf("unsupported output_format %q", c.OutputFormat))
	}
	if c.CustomRules != nil {
		for i, p := range c.CustomRules.Paths {
			if p == "" {
				err = multierr.Append(err, fmt.Errorf("custom_rules.paths[%d]: empty path", i))
			}
		}
	}
	return err
}
