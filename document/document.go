// Package document holds the read-only OpenAPI document model the rules are
// evaluated against: a YAML node tree plus an index from nodes to paths.
package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/errors"
	"github.com/openapi-jsonapi/jsonapi-lint/internal/version"
	"github.com/openapi-jsonapi/jsonapi-lint/system"
	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

// Spectral format identifiers.
const (
	FormatOAS2   = "oas2"
	FormatOAS3   = "oas3"
	FormatOAS3_0 = "oas3.0"
	FormatOAS3_1 = "oas3.1"
)

// Document is a parsed OpenAPI or Swagger document. It is never mutated after
// Parse and is safe for concurrent use.
type Document struct {
	root     *yaml.Node
	location string
	version  string
	swagger  bool
	paths    map[*yaml.Node][]string
}

// Parse parses a YAML or JSON document. location is informational and is
// attached to findings.
func Parse(ctx context.Context, data []byte, location string) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.ErrInvalidDocument.Wrapf("%s is empty", describe(location))
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.ErrInvalidDocument.Wrapf("failed to parse %s: %w", describe(location), err)
	}

	content := yml.Unwrap(&root)
	if content == nil || content.Kind != yaml.MappingNode {
		kind := "nothing"
		if content != nil {
			kind = yml.NodeKindToString(content.Kind)
		}
		return nil, errors.ErrInvalidDocument.Wrapf("%s must be an object, found %s", describe(location), kind)
	}

	doc := &Document{
		root:     &root,
		location: location,
		paths:    make(map[*yaml.Node][]string),
	}

	if v := yml.GetMapValue(content, "openapi"); yml.IsScalar(v) {
		doc.version = strings.TrimSpace(v.Value)
	} else if v := yml.GetMapValue(content, "swagger"); yml.IsScalar(v) {
		doc.version = strings.TrimSpace(v.Value)
		doc.swagger = true
	}

	if err := doc.buildIndex(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// Load reads and parses the document at path.
func Load(ctx context.Context, fsys system.VirtualFS, path string) (*Document, error) {
	data, err := system.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(ctx, data, path)
}

// Root returns the top level mapping node.
func (d *Document) Root() *yaml.Node {
	return yml.Unwrap(d.root)
}

// Location returns the location the document was loaded from.
func (d *Document) Location() string {
	return d.location
}

// Version returns the value of the openapi (or swagger) field, or "" if absent.
func (d *Document) Version() string {
	return d.version
}

// IsSwagger reports whether the document is a Swagger 2.0 document.
func (d *Document) IsSwagger() bool {
	return d.swagger
}

// Formats returns the Spectral format identifiers the document satisfies.
func (d *Document) Formats() []string {
	if d.version == "" {
		return nil
	}
	if d.swagger {
		if version.Matches(d.version, "2") {
			return []string{FormatOAS2}
		}
		return nil
	}

	switch {
	case version.Matches(d.version, "3.0"):
		return []string{FormatOAS3, FormatOAS3_0}
	case version.Matches(d.version, "3.1"):
		return []string{FormatOAS3, FormatOAS3_1}
	case version.Matches(d.version, "3"):
		return []string{FormatOAS3}
	default:
		return nil
	}
}

// HasFormat reports whether the document satisfies any of formats.
// An empty list is satisfied by every document.
func (d *Document) HasFormat(formats ...string) bool {
	if len(formats) == 0 {
		return true
	}
	for _, have := range d.Formats() {
		for _, want := range formats {
			if have == want {
				return true
			}
		}
	}
	return false
}

func describe(location string) string {
	if location == "" {
		return "document"
	}
	return fmt.Sprintf("document %s", location)
}
