package core

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrOutOfRange      = errors.New("fluentcron: value out of range")
	ErrInvalidValue    = errors.New("fluentcron: invalid value")
	ErrUnsupportedType = errors.New("fluentcron: unsupported type")
)

// RangeError reports an argument whose value falls outside its inclusive range.
type RangeError struct {
	Arg   string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("fluentcron: %s must be between %d and %d, got %d", e.Arg, e.Min, e.Max, e.Value)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// InvalidValueError reports an argument that matches no accepted form.
type InvalidValueError struct {
	Arg   string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("fluentcron: invalid %s %q", e.Arg, e.Value)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}
