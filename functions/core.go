package functions

import (
	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

var (
	// Truthy fails unless the target is present and truthy.
	Truthy = New("truthy", "", func(target *yaml.Node, _ *struct{}, _ *Context) []Result {
		if yml.IsTruthy(target) {
			return nil
		}
		return []Result{{Message: "{{property}} must be truthy"}}
	})

	// Falsy fails when the target is present and truthy.
	Falsy = New("falsy", "", func(target *yaml.Node, _ *struct{}, _ *Context) []Result {
		if !yml.IsTruthy(target) {
			return nil
		}
		return []Result{{Message: "{{property}} must be falsy"}}
	})

	// Defined fails when the target is missing.
	Defined = New("defined", "", func(target *yaml.Node, _ *struct{}, _ *Context) []Result {
		if target != nil {
			return nil
		}
		return []Result{{Message: "{{property}} must be defined"}}
	})

	// Undefined fails when the target exists.
	Undefined = New("undefined", "", func(target *yaml.Node, _ *struct{}, _ *Context) []Result {
		if target == nil {
			return nil
		}
		return []Result{{Message: "{{property}} must be undefined"}}
	})
)
