package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

// TextFormatter writes one tab separated line per finding.
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (f *TextFormatter) Format(results []error) (string, error) {
	var sb strings.Builder
	var counts tally

	for _, err := range results {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			msg := vErr.Message()
			if vErr.DocumentLocation != "" {
				msg = fmt.Sprintf("%s (document: %s)", msg, vErr.DocumentLocation)
			}

			pointer := vErr.Pointer()
			if pointer == "" {
				pointer = "-"
			}

			fmt.Fprintf(&sb, "%d:%d\t%s\t%s\t%s\t%s\n", vErr.GetLineNumber(), vErr.GetColumnNumber(), vErr.Severity, vErr.Rule, msg, pointer)
			counts.add(vErr.Severity)
		} else {
			fmt.Fprintf(&sb, "-\t-\terror\tinternal\t%s\t-\n", err.Error())
			counts.errors++
		}
	}

	if len(results) > 0 {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "✖ %d problems (%d errors, %d warnings, %d infos, %d hints)\n", len(results), counts.errors, counts.warnings, counts.infos, counts.hints)
	}

	return sb.String(), nil
}
