package linter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// DocGenerator generates documentation from registered rules
type DocGenerator[T any] struct {
	registry *Registry[T]
}

// NewDocGenerator creates a new documentation generator
func NewDocGenerator[T any](registry *Registry[T]) *DocGenerator[T] {
	return &DocGenerator[T]{registry: registry}
}

// RuleDoc represents documentation for a single rule
type RuleDoc struct {
	ID              string   `json:"id" yaml:"id"`
	Category        string   `json:"category" yaml:"category"`
	Summary         string   `json:"summary" yaml:"summary"`
	Description     string   `json:"description" yaml:"description"`
	Rationale       string   `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	Link            string   `json:"link,omitempty" yaml:"link,omitempty"`
	DefaultSeverity string   `json:"default_severity" yaml:"default_severity"`
	Versions        []string `json:"versions,omitempty" yaml:"versions,omitempty"`
	Given           []string `json:"given,omitempty" yaml:"given,omitempty"`
	Functions       []string `json:"functions,omitempty" yaml:"functions,omitempty"`
	GoodExample     string   `json:"good_example,omitempty" yaml:"good_example,omitempty"`
	BadExample      string   `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	Rulesets        []string `json:"rulesets" yaml:"rulesets"`
}

// GenerateRuleDoc generates documentation for a single rule
func (g *DocGenerator[T]) GenerateRuleDoc(rule RuleRunner[T]) *RuleDoc {
	doc := &RuleDoc{
		ID:              rule.ID(),
		Category:        rule.Category(),
		Summary:         rule.Summary(),
		Description:     rule.Description(),
		Link:            rule.Link(),
		DefaultSeverity: rule.DefaultSeverity().String(),
		Versions:        rule.Versions(),
		Rulesets:        g.registry.RulesetsContaining(rule.ID()),
	}

	if documented, ok := any(rule).(DocumentedRule); ok {
		doc.GoodExample = documented.GoodExample()
		doc.BadExample = documented.BadExample()
		doc.Rationale = documented.Rationale()
	}

	if declarative, ok := any(rule).(DeclarativeRule); ok {
		doc.Given = declarative.Given()
		doc.Functions = declarative.Functions()
	}

	return doc
}

// GenerateAllRuleDocs generates documentation for all registered rules
func (g *DocGenerator[T]) GenerateAllRuleDocs() []*RuleDoc {
	var docs []*RuleDoc
	for _, rule := range g.registry.AllRules() {
		docs = append(docs, g.GenerateRuleDoc(rule))
	}
	return docs
}

// GenerateCategoryDocs groups rules by category
func (g *DocGenerator[T]) GenerateCategoryDocs() map[string][]*RuleDoc {
	categories := make(map[string][]*RuleDoc)
	for _, rule := range g.registry.AllRules() {
		doc := g.GenerateRuleDoc(rule)
		categories[doc.Category] = append(categories[doc.Category], doc)
	}
	return categories
}

// WriteJSON writes rule documentation as JSON
func (g *DocGenerator[T]) WriteJSON(w io.Writer) error {
	return g.WriteRulesJSON(w, g.GenerateAllRuleDocs())
}

// WriteRulesJSON writes documentation for a subset of rules as JSON
func (g *DocGenerator[T]) WriteRulesJSON(w io.Writer, docs []*RuleDoc) error {
	if docs == nil {
		docs = []*RuleDoc{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"rules":      docs,
		"categories": g.registry.AllCategories(),
		"rulesets":   g.registry.AllRulesets(),
	})
}

// WriteMarkdown writes rule documentation as Markdown
func (g *DocGenerator[T]) WriteMarkdown(w io.Writer) error {
	return g.WriteRulesMarkdown(w, g.GenerateAllRuleDocs())
}

// WriteRulesMarkdown writes documentation for a subset of rules as Markdown,
// grouped by category in alphabetical order
func (g *DocGenerator[T]) WriteRulesMarkdown(w io.Writer, docs []*RuleDoc) error {
	byCategory := make(map[string][]*RuleDoc)
	for _, doc := range docs {
		byCategory[doc.Category] = append(byCategory[doc.Category], doc)
	}
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	if err := writeF(w, "# JSON:API Lint Rules Reference\n\n"); err != nil {
		return err
	}

	if err := writeF(w, "## Categories\n\n"); err != nil {
		return err
	}
	for _, category := range categories {
		if err := writeF(w, "- [%s](#%s)\n", category, category); err != nil {
			return err
		}
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}

	for _, category := range categories {
		if err := writeF(w, "## %s\n\n", category); err != nil {
			return err
		}

		for _, rule := range byCategory[category] {
			if err := writeRuleMarkdown(w, rule); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeRuleMarkdown(w io.Writer, rule *RuleDoc) error {
	if err := writeF(w, "### %s\n\n", rule.ID); err != nil {
		return err
	}
	if err := writeF(w, "**Severity:** %s  \n", rule.DefaultSeverity); err != nil {
		return err
	}
	if err := writeF(w, "**Category:** %s  \n", rule.Category); err != nil {
		return err
	}
	if err := writeF(w, "**Rulesets:** %s  \n", strings.Join(rule.Rulesets, ", ")); err != nil {
		return err
	}
	if rule.Summary != "" {
		if err := writeF(w, "**Summary:** %s  \n", rule.Summary); err != nil {
			return err
		}
	}
	if len(rule.Versions) > 0 {
		if err := writeF(w, "**Applies to:** %s  \n", strings.Join(rule.Versions, ", ")); err != nil {
			return err
		}
	}
	if len(rule.Functions) > 0 {
		if err := writeF(w, "**Functions:** `%s`  \n", strings.Join(rule.Functions, "`, `")); err != nil {
			return err
		}
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}

	if err := writeF(w, "%s\n\n", rule.Description); err != nil {
		return err
	}

	if len(rule.Given) > 0 {
		if err := writeF(w, "#### Selectors\n\n"); err != nil {
			return err
		}
		for _, given := range rule.Given {
			if err := writeF(w, "- `%s`\n", given); err != nil {
				return err
			}
		}
		if err := writeEmptyLine(w); err != nil {
			return err
		}
	}

	if rule.Rationale != "" {
		if err := writeF(w, "#### Rationale\n\n%s\n\n", rule.Rationale); err != nil {
			return err
		}
	}

	if err := writeExample(w, "#### ❌ Incorrect", rule.BadExample); err != nil {
		return err
	}
	if err := writeExample(w, "#### ✅ Correct", rule.GoodExample); err != nil {
		return err
	}

	if rule.Link != "" {
		if err := writeF(w, "[Documentation →](%s)\n\n", rule.Link); err != nil {
			return err
		}
	}

	return writeF(w, "---\n\n")
}

func writeExample(w io.Writer, heading, example string) error {
	if example == "" {
		return nil
	}
	return writeF(w, "%s\n```yaml\n%s\n```\n\n", heading, strings.TrimSpace(example))
}

func writeEmptyLine(w io.Writer) error {
	_, err := fmt.Fprintln(w)
	return err
}

func writeF(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
