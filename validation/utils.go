package validation

import (
	"errors"
	"slices"
)

// SortValidationErrors sorts findings by line and column, then severity, rule and message.
// Errors that aren't findings keep their relative order and are moved to the end.
func SortValidationErrors(allErrors []error) {
	if len(allErrors) == 0 {
		return
	}

	var validErrs []*Error
	var otherErrs []error
	for _, err := range allErrors {
		var vErr *Error
		if errors.As(err, &vErr) {
			validErrs = append(validErrs, vErr)
		} else {
			otherErrs = append(otherErrs, err)
		}
	}

	slices.SortStableFunc(validErrs, compareValidationErrors)

	idx := 0
	for _, vErr := range validErrs {
		allErrors[idx] = vErr
		idx++
	}
	for _, err := range otherErrs {
		allErrors[idx] = err
		idx++
	}
}

func compareValidationErrors(a, b *Error) int {
	if a.GetLineNumber() != b.GetLineNumber() {
		return a.GetLineNumber() - b.GetLineNumber()
	}
	if a.GetColumnNumber() != b.GetColumnNumber() {
		return a.GetColumnNumber() - b.GetColumnNumber()
	}
	if a.Severity != b.Severity {
		return int(a.Severity) - int(b.Severity)
	}
	if a.Rule != b.Rule {
		if a.Rule < b.Rule {
			return -1
		}
		return 1
	}
	aMsg, bMsg := a.Message(), b.Message()
	if aMsg != bMsg {
		if aMsg < bMsg {
			return -1
		}
		return 1
	}
	return 0
}

// FilterByRule returns the findings reported by the given rule.
func FilterByRule(errs []error, rule string) []*Error {
	var filtered []*Error
	for _, err := range errs {
		var vErr *Error
		if errors.As(err, &vErr) && vErr.Rule == rule {
			filtered = append(filtered, vErr)
		}
	}
	return filtered
}
