package fluentcron

import (
	"github.com/jdziat/fluentcron/pkg/core"
)

type (
	// RangeError reports an argument outside its inclusive range.
	RangeError = core.RangeError

	// InvalidValueError reports an argument that matches no accepted form.
	InvalidValueError = core.InvalidValueError
)

// Validation errors, for use with errors.Is.
var (
	ErrOutOfRange      = core.ErrOutOfRange
	ErrInvalidValue    = core.ErrInvalidValue
	ErrUnsupportedType = core.ErrUnsupportedType
)
