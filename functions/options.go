package functions

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	lintErrors "github.com/openapi-jsonapi/jsonapi-lint/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const noOptionsSchema = `{"type": ["object", "null"], "maxProperties": 0}`

var defaultPrinter = message.NewPrinter(language.English)

type optionsValidator struct {
	name   string
	schema *jsValidator.Schema
}

func compileOptionsSchema(name, schemaJSON string) (*optionsValidator, error) {
	doc, err := jsValidator.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("function %s: invalid options schema: %w", name, err)
	}

	c := jsValidator.NewCompiler()
	c.DefaultDraft(jsValidator.Draft2020)
	if err := c.AddResource("options.json", doc); err != nil {
		return nil, fmt.Errorf("function %s: invalid options schema: %w", name, err)
	}
	schema, err := c.Compile("options.json")
	if err != nil {
		return nil, fmt.Errorf("function %s: invalid options schema: %w", name, err)
	}

	return &optionsValidator{name: name, schema: schema}, nil
}

// decode validates raw against the options schema and decodes it into out.
func (v *optionsValidator) decode(raw map[string]any, out any) error {
	var data []byte
	var err error
	if raw == nil {
		data = []byte("null")
	} else {
		data, err = json.Marshal(raw)
		if err != nil {
			return optionsError(v.name, err.Error())
		}
	}

	inst, err := jsValidator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return optionsError(v.name, err.Error())
	}

	if err := v.schema.Validate(inst); err != nil {
		var validationErr *jsValidator.ValidationError
		if errors.As(err, &validationErr) {
			return optionsError(v.name, strings.Join(leafMessages(validationErr), "; "))
		}
		return optionsError(v.name, err.Error())
	}

	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return optionsError(v.name, err.Error())
	}
	return nil
}

func optionsError(name, msg string) error {
	return lintErrors.ErrInvalidOptions.Wrapf("%s: %s", name, msg)
}

func leafMessages(err *jsValidator.ValidationError) []string {
	var msgs []string
	for _, cause := range leafCauses(err) {
		loc := "options"
		if len(cause.InstanceLocation) > 0 {
			loc = strings.Join(cause.InstanceLocation, ".")
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", loc, cause.ErrorKind.LocalizedString(defaultPrinter)))
	}
	return msgs
}

// leafCauses flattens a validation error tree into the causes without children.
func leafCauses(err *jsValidator.ValidationError) []*jsValidator.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsValidator.ValidationError{err}
	}
	var leaves []*jsValidator.ValidationError
	for _, cause := range err.Causes {
		leaves = append(leaves, leafCauses(cause)...)
	}
	return leaves
}
