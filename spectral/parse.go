package spectral

import (
	"fmt"
	"io"

	"github.com/openapi-jsonapi/jsonapi-lint/system"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"gopkg.in/yaml.v3"
)

// CategoryCustom is the category of rules read from rulesets.
const CategoryCustom = "custom"

// Ruleset is a parsed Spectral ruleset.
type Ruleset struct {
	// Extends stores the raw extends values; interpreting them is left to the caller.
	Extends []ExtendsEntry
	// Functions lists the custom functions the ruleset declares.
	Functions []string
	// Rules are the full rule definitions.
	Rules []Definition
	// Overrides adjust rules defined elsewhere, keyed by rule ID.
	Overrides []Override
	// Warnings collected while parsing (malformed entries, unsupported fields).
	Warnings []Warning
}

// ExtendsEntry is one extends value, e.g. "spectral:oas" with modifier "recommended".
type ExtendsEntry struct {
	Name     string
	Modifier string
}

// Override changes the severity of, or disables, an existing rule.
type Override struct {
	ID       string
	Severity *validation.Severity
	Disabled bool
}

// Warning is a non-fatal problem found while parsing.
type Warning struct {
	RuleID  string
	Message string
}

func (w Warning) String() string {
	if w.RuleID == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.RuleID, w.Message)
}

// Parse reads a Spectral ruleset. Parse is lenient: malformed rules become
// warnings rather than failing the whole ruleset.
func Parse(r io.Reader) (*Ruleset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read ruleset: %w", err)
	}

	var raw rawRuleset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse ruleset: %w", err)
	}

	rs := &Ruleset{
		Extends:   raw.Extends.entries,
		Functions: raw.Functions,
	}

	if raw.RulesNode.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(raw.RulesNode.Content); i += 2 {
			id := raw.RulesNode.Content[i].Value
			valueNode := raw.RulesNode.Content[i+1]

			var ref rawRuleRef
			if err := valueNode.Decode(&ref); err != nil {
				rs.warn(id, "failed to decode rule: %v; skipped", err)
				continue
			}
			ref.apply(rs, id, raw.Formats)
		}
	} else if raw.RulesNode.Kind != 0 {
		rs.warn("", "rules must be a mapping; ignored")
	}

	if len(raw.Overrides) > 0 {
		rs.warn("", "file based overrides are not supported; ignored")
	}
	if len(raw.Aliases) > 0 {
		rs.warn("", "aliases are not supported; rules using them will fail to compile")
	}
	if raw.FunctionsDir != "" {
		rs.warn("", "functionsDir %q is ignored; only built-in functions are available", raw.FunctionsDir)
	}

	return rs, nil
}

// ParseFile reads a ruleset from fsys.
func ParseFile(fsys system.VirtualFS, path string) (*Ruleset, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ruleset: %w", err)
	}
	defer f.Close()

	rs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

func (rs *Ruleset) warn(ruleID, format string, args ...any) {
	rs.Warnings = append(rs.Warnings, Warning{RuleID: ruleID, Message: fmt.Sprintf(format, args...)})
}

type rawRuleset struct {
	Extends      rawExtends     `yaml:"extends"`
	Formats      []string       `yaml:"formats"`
	RulesNode    yaml.Node      `yaml:"rules"`
	Functions    []string       `yaml:"functions"`
	FunctionsDir string         `yaml:"functionsDir"`
	Overrides    []any          `yaml:"overrides"`
	Aliases      map[string]any `yaml:"aliases"`
}

// rawExtends handles string | string[] | [name, modifier][].
type rawExtends struct {
	entries []ExtendsEntry
}

func (e *rawExtends) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			e.entries = append(e.entries, ExtendsEntry{Name: value.Value})
		}
		return nil
	case yaml.SequenceNode:
		for _, item := range value.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				e.entries = append(e.entries, ExtendsEntry{Name: item.Value})
			case yaml.SequenceNode:
				if len(item.Content) >= 1 {
					entry := ExtendsEntry{Name: item.Content[0].Value}
					if len(item.Content) >= 2 {
						entry.Modifier = item.Content[1].Value
					}
					e.entries = append(e.entries, entry)
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("extends: expected string, list, or tuple list, got %s", value.Tag)
	}
}

// rawRuleRef handles severity-only entries (string, number, bool) and full rules.
type rawRuleRef struct {
	override *Override
	rule     *rawRule
}

func (r *rawRuleRef) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		o := &Override{}
		switch {
		case isOff(value):
			o.Disabled = true
		case value.Tag == "!!bool":
		default:
			sev, err := validation.ParseSeverity(value.Value)
			if err != nil {
				return err
			}
			o.Severity = &sev
		}
		r.override = o
		return nil
	case yaml.MappingNode:
		var rule rawRule
		if err := value.Decode(&rule); err != nil {
			return err
		}
		r.rule = &rule
		return nil
	default:
		return fmt.Errorf("expected severity or rule definition, got %s", value.Tag)
	}
}

type rawRule struct {
	Description      string    `yaml:"description"`
	Message          string    `yaml:"message"`
	Severity         yaml.Node `yaml:"severity"`
	Recommended      *bool     `yaml:"recommended"`
	Formats          []string  `yaml:"formats"`
	Given            rawGiven  `yaml:"given"`
	Then             rawThen   `yaml:"then"`
	DocumentationURL string    `yaml:"documentationUrl"`
	Resolved         *bool     `yaml:"resolved"`
}

// rawGiven handles string | string[].
type rawGiven struct {
	paths []string
}

func (g *rawGiven) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		g.paths = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		return value.Decode(&g.paths)
	default:
		return fmt.Errorf("given: expected string or string[], got %s", value.Tag)
	}
}

// rawThen handles object | object[].
type rawThen struct {
	checks []Then
}

func (t *rawThen) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		var entry Then
		if err := value.Decode(&entry); err != nil {
			return err
		}
		t.checks = []Then{entry}
		return nil
	case yaml.SequenceNode:
		return value.Decode(&t.checks)
	default:
		return fmt.Errorf("then: expected object or object[], got %s", value.Tag)
	}
}

func (r *rawRuleRef) apply(rs *Ruleset, id string, defaultFormats []string) {
	if r.override != nil {
		o := *r.override
		o.ID = id
		rs.Overrides = append(rs.Overrides, o)
		return
	}
	if r.rule == nil {
		rs.warn(id, "rule has no definition; skipped")
		return
	}

	raw := r.rule
	def := Definition{
		ID:          id,
		Description: raw.Description,
		Message:     raw.Message,
		Category:    CategoryCustom,
		Severity:    validation.SeverityWarning,
		Formats:     raw.Formats,
		Given:       raw.Given.paths,
		Recommended: raw.Recommended == nil || *raw.Recommended,
		Link:        raw.DocumentationURL,
	}
	if len(def.Formats) == 0 {
		def.Formats = defaultFormats
	}
	if raw.Resolved != nil && !*raw.Resolved {
		rs.warn(id, "resolved: false has no effect; references are never resolved")
	}

	disabled := false
	if raw.Severity.Kind == yaml.ScalarNode {
		switch {
		case isOff(&raw.Severity):
			disabled = true
		default:
			sev, err := validation.ParseSeverity(raw.Severity.Value)
			if err != nil {
				rs.warn(id, "%v; using warn", err)
			} else {
				def.Severity = sev
			}
		}
	}

	if len(def.Given) == 0 {
		rs.warn(id, "rule has no given selectors; skipped")
		return
	}
	for _, t := range raw.Then.checks {
		if t.Function == "" {
			rs.warn(id, "then entry has no function; skipped")
			continue
		}
		def.Then = append(def.Then, t)
	}
	if len(def.Then) == 0 {
		rs.warn(id, "rule has no then checks; skipped")
		return
	}

	rs.Rules = append(rs.Rules, def)
	if disabled {
		rs.Overrides = append(rs.Overrides, Override{ID: id, Disabled: true})
	}
}

// isOff reports whether a Spectral severity value disables a rule.
func isOff(value *yaml.Node) bool {
	return value.Value == "off" || value.Value == "-1" || (value.Tag == "!!bool" && value.Value == "false")
}
