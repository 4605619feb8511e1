package functions

import (
	"slices"

	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

const (
	NameNoMultiple4xxStatusCodes = "noMultiple4xxStatusCodes"
	NameNoMultiple5xxStatusCodes = "noMultiple5xxStatusCodes"
)

var (
	// NoMultiple4xxStatusCodes reports a responses object declaring more than
	// one client error status code.
	NoMultiple4xxStatusCodes = New(NameNoMultiple4xxStatusCodes, "", statusClassCounter('4'))
	// NoMultiple5xxStatusCodes reports a responses object declaring more than
	// one server error status code.
	NoMultiple5xxStatusCodes = New(NameNoMultiple5xxStatusCodes, "", statusClassCounter('5'))
)

// statusClassCounter counts mapping keys starting with class. Only the first
// character is inspected, so malformed keys such as "4XX" or "4oops" count.
func statusClassCounter(class byte) func(*yaml.Node, *struct{}, *Context) []Result {
	message := "Multiple " + string(class) + "xx status codes are not allowed in the same response."

	return func(target *yaml.Node, _ *struct{}, fctx *Context) []Result {
		count := 0
		for _, key := range yml.Keys(target) {
			key = yml.ResolveAlias(key)
			if key != nil && len(key.Value) > 0 && key.Value[0] == class {
				count++
			}
		}
		if count <= 1 {
			return nil
		}
		return []Result{{Message: message, Path: slices.Clone(fctx.Path)}}
	}
}
