package functions

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/document"
	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// SchemaOptions configures schema.
type SchemaOptions struct {
	Schema    map[string]any `json:"schema"`
	AllErrors bool           `json:"allErrors,omitempty"`

	compiled *jsValidator.Schema
}

// Schema validates the target against a JSON Schema (draft 2020-12 unless
// the schema declares otherwise).
var Schema = New("schema", `{
	"type": "object",
	"properties": {
		"schema": {"type": "object"},
		"allErrors": {"type": "boolean"}
	},
	"required": ["schema"],
	"additionalProperties": false
}`, schema).WithPrepare(func(opts *SchemaOptions) error {
	data, err := json.Marshal(opts.Schema)
	if err != nil {
		return err
	}
	doc, err := jsValidator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}

	c := jsValidator.NewCompiler()
	c.DefaultDraft(jsValidator.Draft2020)
	if err := c.AddResource("schema.json", doc); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	opts.compiled, err = c.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	return nil
})

func schema(target *yaml.Node, opts *SchemaOptions, fctx *Context) []Result {
	if target == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := document.ToJSON(target, 0, &buf); err != nil {
		return []Result{{Message: fmt.Sprintf("{{property}} can't be converted to JSON: %s", err)}}
	}
	inst, err := jsValidator.UnmarshalJSON(&buf)
	if err != nil {
		return []Result{{Message: fmt.Sprintf("{{property}} can't be converted to JSON: %s", err)}}
	}

	err = opts.compiled.Validate(inst)
	if err == nil {
		return nil
	}

	var validationErr *jsValidator.ValidationError
	if !errors.As(err, &validationErr) {
		return []Result{{Message: err.Error()}}
	}

	causes := leafCauses(validationErr)
	if !opts.AllErrors && len(causes) > 1 {
		causes = causes[:1]
	}

	results := make([]Result, 0, len(causes))
	for _, cause := range causes {
		path := append(slices.Clone(fctx.Path), cause.InstanceLocation...)
		msg := cause.ErrorKind.LocalizedString(defaultPrinter)
		if len(cause.InstanceLocation) > 0 {
			msg = fmt.Sprintf("`%s` %s", strings.Join(cause.InstanceLocation, "."), msg)
		}
		results = append(results, Result{Message: msg, Path: path})
	}
	return results
}
