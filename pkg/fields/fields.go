package fields

import (
	"strconv"
	"strings"

	"github.com/jdziat/fluentcron/pkg/core"
)

// Field identifies one of the five positional slots of a cron expression.
type Field int

// Fields in rendering order.
const (
	Minute Field = iota
	Hour
	Day
	Month
	Weekday
)

// Tokens shared by every field.
const (
	Wildcard   = "*"
	StepPrefix = "*/"
)

// Inclusive field ranges.
const (
	MinMinute  = 0
	MaxMinute  = 59
	MinHour    = 0
	MaxHour    = 23
	MinDay     = 1
	MaxDay     = 31
	MinMonth   = 1
	MaxMonth   = 12
	MinWeekday = 0
	MaxWeekday = 6

	// Interval bounds for */N tokens.
	MinMinuteStep = 1
	MaxMinuteStep = 59
	MinHourStep   = 1
	MaxHourStep   = 23
)

// All lists the fields in rendering order.
var All = []Field{Minute, Hour, Day, Month, Weekday}

var names = [...]string{"minute", "hour", "day", "month", "weekday"}

func (f Field) String() string {
	if f < Minute || f > Weekday {
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
	return names[f]
}

// Bounds returns the inclusive range of plain integer values for the field.
func (f Field) Bounds() (lo, hi int) {
	switch f {
	case Minute:
		return MinMinute, MaxMinute
	case Hour:
		return MinHour, MaxHour
	case Day:
		return MinDay, MaxDay
	case Month:
		return MinMonth, MaxMonth
	default:
		return MinWeekday, MaxWeekday
	}
}

// StepBounds returns the inclusive range of N in a */N token.
// ok is false for fields that never carry a step.
func (f Field) StepBounds() (lo, hi int, ok bool) {
	switch f {
	case Minute:
		return MinMinuteStep, MaxMinuteStep, true
	case Hour:
		return MinHourStep, MaxHourStep, true
	default:
		return 0, 0, false
	}
}

// CheckRange fails with a *core.RangeError naming arg when v is outside [lo, hi].
func CheckRange(arg string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &core.RangeError{Arg: arg, Value: v, Min: lo, Max: hi}
	}
	return nil
}

// Step renders an interval token: "*" for every unit, "*/n" otherwise.
func Step(n int) string {
	if n == 1 {
		return Wildcard
	}
	return StepPrefix + strconv.Itoa(n)
}

// Validate checks that token is a wildcard, a canonical decimal in the
// field's range, or a */N step within the field's step range. Only the
// canonical spelling of each value is accepted.
func Validate(f Field, token string) error {
	if token == Wildcard {
		return nil
	}

	if rest, ok := strings.CutPrefix(token, StepPrefix); ok {
		lo, hi, allowed := f.StepBounds()
		if !allowed {
			return &core.InvalidValueError{Arg: f.String(), Value: token}
		}
		n, err := parseDecimal(rest)
		if err != nil {
			return &core.InvalidValueError{Arg: f.String(), Value: token}
		}
		if err := CheckRange(f.String(), n, lo, hi); err != nil {
			return err
		}
		// "*/1" is spelled "*"
		if Step(n) != token {
			return &core.InvalidValueError{Arg: f.String(), Value: token}
		}
		return nil
	}

	n, err := parseDecimal(token)
	if err != nil {
		return &core.InvalidValueError{Arg: f.String(), Value: token}
	}
	lo, hi := f.Bounds()
	return CheckRange(f.String(), n, lo, hi)
}

// parseDecimal accepts only the form strconv.Itoa produces for a
// non-negative int, so equal values always have equal tokens.
func parseDecimal(s string) (int, error) {
	if s == "" {
		return 0, core.ErrInvalidValue
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strconv.Itoa(n) != s {
		return 0, core.ErrInvalidValue
	}
	return n, nil
}
