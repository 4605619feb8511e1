package format

import (
	"encoding/json"
	"errors"

	"github.com/openapi-jsonapi/jsonapi-lint/validation"
)

type JSONFormatter struct {
	categoryOf CategoryFunc
}

// NewJSONFormatter creates a formatter; categoryOf may be nil.
func NewJSONFormatter(categoryOf CategoryFunc) *JSONFormatter {
	return &JSONFormatter{categoryOf: categoryOf}
}

type jsonOutput struct {
	Results []jsonResult `json:"results"`
	Summary jsonSummary  `json:"summary"`
}

type jsonResult struct {
	Rule     string       `json:"rule"`
	Category string       `json:"category"`
	Severity string       `json:"severity"`
	Message  string       `json:"message"`
	Location jsonLocation `json:"location"`
	Document string       `json:"document,omitempty"`
}

type jsonLocation struct {
	Line    int      `json:"line"`
	Column  int      `json:"column"`
	Pointer string   `json:"pointer,omitempty"`
	Path    []string `json:"path,omitempty"`
}

type jsonSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
	Hints    int `json:"hints"`
}

func (f *JSONFormatter) Format(results []error) (string, error) {
	output := jsonOutput{
		Results: make([]jsonResult, 0, len(results)),
	}
	var counts tally

	for _, err := range results {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			output.Results = append(output.Results, jsonResult{
				Rule:     vErr.Rule,
				Category: f.categoryOf.lookup(vErr.Rule),
				Severity: vErr.Severity.String(),
				Message:  vErr.Message(),
				Location: jsonLocation{
					Line:    vErr.GetLineNumber(),
					Column:  vErr.GetColumnNumber(),
					Pointer: vErr.Pointer(),
					Path:    vErr.Path,
				},
				Document: vErr.DocumentLocation,
			})
			counts.add(vErr.Severity)
		} else {
			output.Results = append(output.Results, jsonResult{
				Rule:     "internal",
				Category: "internal",
				Severity: validation.SeverityError.String(),
				Message:  err.Error(),
			})
			counts.errors++
		}
	}

	output.Summary = jsonSummary{
		Total:    len(results),
		Errors:   counts.errors,
		Warnings: counts.warnings,
		Infos:    counts.infos,
		Hints:    counts.hints,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}
