package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/openapi-jsonapi/jsonapi-lint/document"
	"github.com/openapi-jsonapi/jsonapi-lint/jsonapilint"
	"github.com/openapi-jsonapi/jsonapi-lint/linter"
	"github.com/spf13/cobra"
)

type listRulesFlags struct {
	format   string
	category string
	ruleset  string
}

func newListRulesCmd() *cobra.Command {
	flags := &listRulesFlags{}

	cmd := &cobra.Command{
		Use:   "list-rules",
		Short: "List all available linting rules",
		Long: `List all available linting rules with their metadata.

Shows each rule's ID, category, default severity and summary.
Use --category to filter by category, or --ruleset to show only rules in a ruleset.

Examples:
  jsonapi-lint list-rules
  jsonapi-lint list-rules --category error-objects
  jsonapi-lint list-rules --ruleset recommended
  jsonapi-lint list-rules --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListRules(cmd.OutOrStdout(), flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: text, json or markdown")
	cmd.Flags().StringVar(&flags.category, "category", "", "Filter by category (e.g., media-type, naming)")
	cmd.Flags().StringVar(&flags.ruleset, "ruleset", "", "Filter by ruleset (e.g., recommended, all)")

	return cmd
}

func runListRules(out io.Writer, flags *listRulesFlags) error {
	lint, err := jsonapilint.NewLinter(linter.NewConfig())
	if err != nil {
		return fmt.Errorf("failed to create linter: %w", err)
	}

	registry := lint.Registry()
	docGen := linter.NewDocGenerator(registry)

	var docs []*linter.RuleDoc
	for _, rule := range registry.AllRules() {
		if flags.category != "" && rule.Category() != flags.category {
			continue
		}
		if flags.ruleset != "" && !slices.Contains(registry.RulesetsContaining(rule.ID()), flags.ruleset) {
			continue
		}
		docs = append(docs, docGen.GenerateRuleDoc(rule))
	}

	switch flags.format {
	case "json":
		return docGen.WriteRulesJSON(out, docs)
	case "markdown":
		return docGen.WriteRulesMarkdown(out, docs)
	case "text":
		return printRulesText(out, docs, registry)
	default:
		return fmt.Errorf("unsupported format %q: expected text, json or markdown", flags.format)
	}
}

func printRulesText(out io.Writer, docs []*linter.RuleDoc, registry *linter.Registry[*document.Document]) error {
	if len(docs) == 0 {
		_, err := fmt.Fprintln(out, "No rules found matching the specified filters.")
		return err
	}

	byCategory := make(map[string][]*linter.RuleDoc)
	for _, doc := range docs {
		byCategory[doc.Category] = append(byCategory[doc.Category], doc)
	}

	for _, cat := range registry.AllCategories() {
		rules, ok := byCategory[cat]
		if !ok {
			continue
		}

		fmt.Fprintf(out, "\n%s (%d rules)\n", strings.ToUpper(cat), len(rules))
		fmt.Fprintln(out, strings.Repeat("─", 80))

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, doc := range rules {
			fmt.Fprintf(w, "  %s\t%s\t[%s]\n", doc.ID, doc.Summary, doc.DefaultSeverity)
			if doc.Link != "" {
				fmt.Fprintf(w, "  \tDocs: %s\n", doc.Link)
			}
			fmt.Fprintf(w, "  \tRulesets: %s\n", strings.Join(doc.Rulesets, ", "))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(out, "\n%d rules total\n", len(docs))
	return err
}
