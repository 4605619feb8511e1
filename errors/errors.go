// Package errors provides constant sentinel errors for the linter packages.
// It shadows the standard library errors package so callers only need one import.
package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrSeparator separates a sentinel message from its cause.
const ErrSeparator = " -- "

// Error is a string based error type that allows errors to be declared as constants.
type Error string

const (
	// ErrInvalidOptions is returned when a function's options fail validation.
	ErrInvalidOptions = Error("invalid function options")
	// ErrUnknownFunction is returned when a rule references an unregistered function.
	ErrUnknownFunction = Error("unknown function")
	// ErrInvalidSelector is returned when a given expression can't be compiled.
	ErrInvalidSelector = Error("invalid selector")
	// ErrInvalidRule is returned when a rule definition is incomplete.
	ErrInvalidRule = Error("invalid rule")
	// ErrInvalidDocument is returned when a document can't be linted.
	ErrInvalidDocument = Error("invalid document")
)

func (s Error) Error() string {
	return string(s)
}

// Is reports whether target carries the same message, either directly or as the prefix of a wrapped error.
func (s Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return s.Error() == target.Error() || strings.HasPrefix(target.Error(), s.Error()+ErrSeparator)
}

// As sets target to s when target points at an Error.
func (s Error) As(target any) bool {
	v := reflect.ValueOf(target).Elem()
	if v.Type().Name() == "Error" && v.CanSet() {
		v.SetString(string(s))
		return true
	}
	return false
}

// Wrap attaches err as the cause of s.
func (s Error) Wrap(err error) error {
	return wrappedError{cause: err, msg: string(s)}
}

// Wrapf attaches a formatted cause to s.
func (s Error) Wrapf(format string, args ...any) error {
	return wrappedError{cause: fmt.Errorf(format, args...), msg: string(s)}
}

type wrappedError struct {
	cause error
	msg   string
}

func (w wrappedError) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s%s%v", w.msg, ErrSeparator, w.cause)
	}
	return w.msg
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) As(target any) bool {
	return Error(w.msg).As(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// Is is errors.Is.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New is errors.New.
func New(message string) error {
	return errors.New(message)
}
