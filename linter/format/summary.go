package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

// SummaryFormatter formats results as a per-rule summary table.
type SummaryFormatter struct {
	categoryOf CategoryFunc
}

// NewSummaryFormatter creates a new SummaryFormatter; categoryOf may be nil.
func NewSummaryFormatter(categoryOf CategoryFunc) *SummaryFormatter {
	return &SummaryFormatter{categoryOf: categoryOf}
}

type ruleSummary struct {
	rule     string
	category string
	severity validation.Severity
	count    int
}

// Format outputs a per-rule summary table sorted by count descending.
func (f *SummaryFormatter) Format(results []error) (string, error) {
	byRule := make(map[string]*ruleSummary)
	var counts tally

	for _, err := range results {
		rule, category, severity := "internal", "internal", validation.SeverityError

		var vErr *validation.Error
		if errors.As(err, &vErr) {
			rule, category, severity = vErr.Rule, f.categoryOf.lookup(vErr.Rule), vErr.Severity
		}

		rs, ok := byRule[rule]
		if !ok {
			rs = &ruleSummary{rule: rule, category: category, severity: severity}
			byRule[rule] = rs
		}
		rs.count++
		counts.add(severity)
	}

	sorted := make([]*ruleSummary, 0, len(byRule))
	for _, rs := range byRule {
		sorted = append(sorted, rs)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].rule < sorted[j].rule
	})

	var sb strings.Builder

	fmt.Fprintf(&sb, "%-50s %8s %18s %8s\n", "Rule", "Severity", "Category", "Count")
	sb.WriteString(strings.Repeat("─", 88))
	sb.WriteString("\n")

	for _, rs := range sorted {
		fmt.Fprintf(&sb, "%-50s %8s %18s %8d\n", rs.rule, rs.severity, rs.category, rs.count)
	}

	sb.WriteString(strings.Repeat("─", 88))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "✖ %d problems (%d errors, %d warnings, %d infos, %d hints) across %d rules\n",
		len(results), counts.errors, counts.warnings, counts.infos, counts.hints, len(byRule))

	return sb.String(), nil
}
