// Package format renders lint findings for terminals and tools.
package format

import "github.com/openapi-jsonapi/jsonapi-lint/validation"

type Formatter interface {
	Format(results []error) (string, error)
}

// CategoryFunc maps a rule ID to its category.
type CategoryFunc func(rule string) string

func (f CategoryFunc) lookup(rule string) string {
	if f == nil {
		return "unknown"
	}
	return f(rule)
}

type tally struct {
	errors   int
	warnings int
	infos    int
	hints    int
}

func (t *tally) add(severity validation.Severity) {
	switch severity {
	case validation.SeverityError:
		t.errors++
	case validation.SeverityWarning:
		t.warnings++
	case validation.SeverityInfo:
		t.infos++
	case validation.SeverityHint:
		t.hints++
	}
}
