package validation

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Error is a single lint finding: a rule, a severity, a message and where in
// the document it was found.
type Error struct {
	// UnderlyingError carries the message.
	UnderlyingError error
	// Node is the YAML node the finding points at, used for line and column.
	Node *yaml.Node
	Severity Severity
	Rule     string
	// Path is the location of the finding as path segments from the document root.
	Path []string
	// DocumentLocation is the file or URL of the document, if known.
	DocumentLocation string
}

var _ error = (*Error)(nil)

// NewValidationError creates a finding for the given rule.
func NewValidationError(severity Severity, rule string, err error, node *yaml.Node) *Error {
	return &Error{
		UnderlyingError: err,
		Node:            node,
		Severity:        severity,
		Rule:            rule,
	}
}

// WithPath sets the document path of the finding and returns it.
func (e *Error) WithPath(path []string) *Error {
	e.Path = path
	return e
}

func (e *Error) Error() string {
	msg := "<nil>"
	if e.UnderlyingError != nil {
		msg = e.UnderlyingError.Error()
	}
	if e.Rule == "" {
		return fmt.Sprintf("[%d:%d] %s", e.GetLineNumber(), e.GetColumnNumber(), msg)
	}
	return fmt.Sprintf("[%d:%d] %s %s %s", e.GetLineNumber(), e.GetColumnNumber(), e.Severity, e.Rule, msg)
}

func (e *Error) Unwrap() error {
	return e.UnderlyingError
}

// GetLineNumber returns the line of the node, or -1 when unknown.
func (e *Error) GetLineNumber() int {
	if e == nil || e.Node == nil {
		return -1
	}
	return e.Node.Line
}

// GetColumnNumber returns the column of the node, or -1 when unknown.
func (e *Error) GetColumnNumber() int {
	if e == nil || e.Node == nil {
		return -1
	}
	return e.Node.Column
}

// Message returns the finding's message without position information.
func (e *Error) Message() string {
	if e == nil || e.UnderlyingError == nil {
		return ""
	}
	return e.UnderlyingError.Error()
}

// Pointer renders Path as an RFC 6901 JSON pointer.
func (e *Error) Pointer() string {
	if e == nil || e.Path == nil {
		return ""
	}
	return JSONPointer(e.Path)
}

// JSONPointer renders path segments as an RFC 6901 JSON pointer.
func JSONPointer(path []string) string {
	var sb strings.Builder
	sb.WriteString("#")
	for _, seg := range path {
		sb.WriteByte('/')
		seg = strings.ReplaceAll(seg, "~", "~0")
		seg = strings.ReplaceAll(seg, "/", "~1")
		sb.WriteString(seg)
	}
	return sb.String()
}
