package functions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

// PatternOptions configures pattern. Expressions use RE2 syntax and may be
// written as /expr/flags with flags drawn from i, m and s.
type PatternOptions struct {
	Match    string `json:"match,omitempty"`
	NotMatch string `json:"notMatch,omitempty"`

	match    *regexp.Regexp
	notMatch *regexp.Regexp
}

// Pattern checks string scalars against regular expressions.
var Pattern = New("pattern", `{
	"type": "object",
	"properties": {
		"match": {"type": "string"},
		"notMatch": {"type": "string"}
	},
	"anyOf": [{"required": ["match"]}, {"required": ["notMatch"]}],
	"additionalProperties": false
}`, pattern).WithPrepare(func(opts *PatternOptions) error {
	var err error
	if opts.Match != "" {
		if opts.match, err = CompilePattern(opts.Match); err != nil {
			return err
		}
	}
	if opts.NotMatch != "" {
		if opts.notMatch, err = CompilePattern(opts.NotMatch); err != nil {
			return err
		}
	}
	return nil
})

func pattern(target *yaml.Node, opts *PatternOptions, _ *Context) []Result {
	if !yml.IsScalar(target) {
		return nil
	}
	value := yml.Unwrap(target).Value

	var results []Result
	if opts.match != nil && !opts.match.MatchString(value) {
		results = append(results, Result{Message: fmt.Sprintf("{{property}} must match the pattern %q", opts.Match)})
	}
	if opts.notMatch != nil && opts.notMatch.MatchString(value) {
		results = append(results, Result{Message: fmt.Sprintf("{{property}} must not match the pattern %q", opts.NotMatch)})
	}
	return results
}

// CompilePattern compiles expr, accepting the /expr/flags notation.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	if len(expr) > 1 && strings.HasPrefix(expr, "/") {
		if end := strings.LastIndex(expr, "/"); end > 0 {
			flags := expr[end+1:]
			body := expr[1:end]
			for _, f := range flags {
				if !strings.ContainsRune("ims", f) {
					return nil, fmt.Errorf("unsupported regular expression flag %q in %s", f, expr)
				}
			}
			if flags != "" {
				body = "(?" + flags + ")" + body
			}
			expr = body
		}
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression: %w", err)
	}
	return re, nil
}
