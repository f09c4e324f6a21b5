// Package weekday maps weekday designators to cron weekday codes.
//
// Codes follow cron: 0 is Sunday and 6 is Saturday. Names are matched
// case-insensitively in long ("monday") or three-letter ("mon") form.
package weekday

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jdziat/fluentcron/pkg/core"
	"github.com/jdziat/fluentcron/pkg/fields"
)

// Weekday codes.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var longNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// byName is keyed by lowercase long and short names.
var byName = func() map[string]int {
	m := make(map[string]int, 2*len(longNames))
	for code, name := range longNames {
		m[name] = code
		m[name[:3]] = code
	}
	return m
}()

// Normalize converts an integer, time.Weekday, or weekday name to its cron code.
// Any other type fails with core.ErrUnsupportedType.
func Normalize(v any) (int, error) {
	switch w := v.(type) {
	case int:
		return signed(w)
	case int8:
		return signed(w)
	case int16:
		return signed(w)
	case int32:
		return signed(w)
	case int64:
		return signed(w)
	case uint:
		return unsigned(w)
	case uint8:
		return unsigned(w)
	case uint16:
		return unsigned(w)
	case uint32:
		return unsigned(w)
	case uint64:
		return unsigned(w)
	case time.Weekday:
		return signed(int(w))
	case string:
		return Parse(w)
	default:
		return 0, fmt.Errorf("%w: weekday of type %T", core.ErrUnsupportedType, v)
	}
}

// Parse looks up a weekday name, ignoring case and surrounding whitespace.
func Parse(name string) (int, error) {
	code, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, &core.InvalidValueError{Arg: "weekday", Value: name}
	}
	return code, nil
}

// Name returns the lowercase long name for code, or "" if code is not a weekday.
func Name(code int) string {
	if code < fields.MinWeekday || code > fields.MaxWeekday {
		return ""
	}
	return longNames[code]
}

// signed range-checks in int64 before converting, so no kind can overflow.
func signed[T int | int8 | int16 | int32 | int64](w T) (int, error) {
	v := int64(w)
	if v < fields.MinWeekday || v > fields.MaxWeekday {
		reported := math.MaxInt
		if v < 0 {
			reported = math.MinInt
		}
		if v >= math.MinInt && v <= math.MaxInt {
			reported = int(v)
		}
		return 0, outOfRange(reported)
	}
	return int(v), nil
}

func unsigned[T uint | uint8 | uint16 | uint32 | uint64](w T) (int, error) {
	v := uint64(w)
	if v > fields.MaxWeekday {
		reported := math.MaxInt
		if v <= math.MaxInt {
			reported = int(v)
		}
		return 0, outOfRange(reported)
	}
	return int(v), nil
}

func outOfRange(v int) error {
	return &core.RangeError{Arg: "weekday", Value: v, Min: fields.MinWeekday, Max: fields.MaxWeekday}
}
