// Package fluentcron builds five-field cron expressions with a fluent API.
//
// This is the main package users should import. It re-exports the public
// types from the pkg/ packages for a clean API surface.
//
// Basic usage:
//
//	// Daily at 5:00
//	s, err := fluentcron.New().Daily().AtHour(5)
//
//	// Weekly on Monday at 5:30
//	s, err = fluentcron.New().Weekly().OnMonday().At(5, 30)
//
//	// Every 30 minutes
//	s, err = fluentcron.New().EveryNMinutes(30)
//
//	// Monthly on the 1st at 5:00, panicking on invalid input
//	s = fluentcron.Must(fluentcron.Must(fluentcron.New().Monthly().OnDay(1)).AtHour(5))
//
//	fmt.Println(s) // 0 5 1 * *
//
// Schedules are immutable and comparable, so they can be shared between
// goroutines and used as map keys.
package fluentcron

import (
	"github.com/jdziat/fluentcron/pkg/fields"
	"github.com/jdziat/fluentcron/pkg/presets"
	"github.com/jdziat/fluentcron/pkg/schedule"
)

// Type aliases for the pkg/ types
type (
	// Schedule is an immutable five-field cron expression.
	Schedule = schedule.Schedule

	// Field identifies one of the five cron fields.
	Field = fields.Field

	// Preset is a named well-known expression.
	Preset = presets.Preset
)

// Field constants
const (
	FieldMinute  = fields.Minute
	FieldHour    = fields.Hour
	FieldDay     = fields.Day
	FieldMonth   = fields.Month
	FieldWeekday = fields.Weekday
)

// New returns a schedule matching every minute: "* * * * *".
func New() Schedule {
	return schedule.New()
}

// FromFields builds a schedule from explicit field tokens.
func FromFields(minute, hour, day, month, weekday string) (Schedule, error) {
	return schedule.FromFields(minute, hour, day, month, weekday)
}

// Must returns s or panics if err is non-nil.
func Must(s Schedule, err error) Schedule {
	return schedule.Must(s, err)
}
