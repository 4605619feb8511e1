package spectral

import (
	"fmt"
	"io"
	"slices"

	"github.com/openapi-jsonapi/jsonapi-lint/functions"
	"github.com/openapi-jsonapi/jsonapi-lint/validation"
	"gopkg.in/yaml.v3"
)

// Export writes definitions as a Spectral ruleset. Functions that are not
// part of Spectral's core set are declared under "functions", so the
// ruleset loads in Spectral once implementations are provided.
func Export(w io.Writer, defs []Definition) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	var custom []string
	rules := &yaml.Node{Kind: yaml.MappingNode}
	for _, def := range defs {
		node, err := exportRule(def)
		if err != nil {
			return fmt.Errorf("%s: %w", def.ID, err)
		}
		rules.Content = append(rules.Content, scalar(def.ID), node)

		for _, t := range def.Then {
			if slices.Contains(functions.Custom, t.Function) && !slices.Contains(custom, t.Function) {
				custom = append(custom, t.Function)
			}
		}
	}

	if len(custom) > 0 {
		slices.Sort(custom)
		fns := &yaml.Node{Kind: yaml.SequenceNode}
		for _, name := range custom {
			fns.Content = append(fns.Content, scalar(name))
		}
		root.Content = append(root.Content, scalar("functions"), fns)
	}
	root.Content = append(root.Content, scalar("rules"), rules)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to write ruleset: %w", err)
	}
	return enc.Close()
}

type exportedRule struct {
	Description      string   `yaml:"description,omitempty"`
	Message          string   `yaml:"message,omitempty"`
	Severity         string   `yaml:"severity"`
	Recommended      bool     `yaml:"recommended"`
	Formats          []string `yaml:"formats,omitempty"`
	DocumentationURL string   `yaml:"documentationUrl,omitempty"`
	Given            any      `yaml:"given"`
	Then             any      `yaml:"then"`
}

func exportRule(def Definition) (*yaml.Node, error) {
	rule := exportedRule{
		Description:      def.Description,
		Message:          def.Message,
		Severity:         spectralSeverity(def.Severity),
		Recommended:      def.Recommended,
		Formats:          def.Formats,
		DocumentationURL: def.Link,
		Given:            def.Given,
		Then:             def.Then,
	}
	if len(def.Given) == 1 {
		rule.Given = def.Given[0]
	}
	if len(def.Then) == 1 {
		rule.Then = def.Then[0]
	}

	var node yaml.Node
	if err := node.Encode(rule); err != nil {
		return nil, err
	}
	return &node, nil
}

// spectralSeverity spells severities the way Spectral rulesets do.
func spectralSeverity(s validation.Severity) string {
	if s == validation.SeverityWarning {
		return "warn"
	}
	return s.String()
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
