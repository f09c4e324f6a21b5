package schedule

import (
	"strconv"
	"strings"

	"github.com/jdziat/fluentcron/pkg/fields"
	"github.com/jdziat/fluentcron/pkg/weekday"
)

// Schedule is an immutable five-field cron expression.
//
// Every method returns a new Schedule and leaves the receiver untouched.
// Schedules are comparable: two schedules with the same fields are == and
// may be used interchangeably as map keys.
//
// The zero value is ready to use and equals New(). Wildcards are stored as
// "" so that holds; accessors and Render report them as "*".
type Schedule struct {
	minute  string
	hour    string
	day     string
	month   string
	weekday string
}

// New returns a schedule matching every minute: "* * * * *".
func New() Schedule {
	return Schedule{}
}

// FromFields builds a schedule from explicit field tokens.
// Each token must be "*", a decimal in the field's range, or "*/N" for
// the minute and hour fields.
func FromFields(minute, hour, day, month, weekday string) (Schedule, error) {
	tokens := [...]string{minute, hour, day, month, weekday}
	for i, f := range fields.All {
		if err := fields.Validate(f, tokens[i]); err != nil {
			return Schedule{}, err
		}
	}
	return Schedule{
		minute:  stored(minute),
		hour:    stored(hour),
		day:     stored(day),
		month:   stored(month),
		weekday: stored(weekday),
	}, nil
}

// Must returns s or panics if err is non-nil.
func Must(s Schedule, err error) Schedule {
	if err != nil {
		panic("invalid cron schedule: " + err.Error())
	}
	return s
}

// With returns a copy of s with field f replaced by token.
func (s Schedule) With(f fields.Field, token string) (Schedule, error) {
	if err := fields.Validate(f, token); err != nil {
		return Schedule{}, err
	}
	return s.set(f, stored(token)), nil
}

// At sets the hour and minute.
func (s Schedule) At(hour, minute int) (Schedule, error) {
	if err := fields.CheckRange("hour", hour, fields.MinHour, fields.MaxHour); err != nil {
		return Schedule{}, err
	}
	if err := fields.CheckRange("minute", minute, fields.MinMinute, fields.MaxMinute); err != nil {
		return Schedule{}, err
	}
	s.hour = strconv.Itoa(hour)
	s.minute = strconv.Itoa(minute)
	return s, nil
}

// AtHour sets the hour and resets the minute to 0.
func (s Schedule) AtHour(hour int) (Schedule, error) {
	return s.At(hour, 0)
}

// EveryNMinutes runs every n minutes. n of 1 renders as "*".
func (s Schedule) EveryNMinutes(n int) (Schedule, error) {
	if err := fields.CheckRange("n", n, fields.MinMinuteStep, fields.MaxMinuteStep); err != nil {
		return Schedule{}, err
	}
	s.minute = stored(fields.Step(n))
	return s, nil
}

// EveryNHours runs every n hours. n of 1 renders as "*".
func (s Schedule) EveryNHours(n int) (Schedule, error) {
	if err := fields.CheckRange("n", n, fields.MinHourStep, fields.MaxHourStep); err != nil {
		return Schedule{}, err
	}
	s.hour = stored(fields.Step(n))
	return s, nil
}

// Daily clears any day-of-month and weekday restriction.
func (s Schedule) Daily() Schedule {
	s.day = ""
	s.weekday = ""
	return s
}

// Weekly clears the day-of-month. Pair it with OnWeekday or OnMonday etc.
func (s Schedule) Weekly() Schedule {
	s.day = ""
	return s
}

// Monthly clears the weekday. Pair it with OnDay.
func (s Schedule) Monthly() Schedule {
	s.weekday = ""
	return s
}

// OnDay sets the day of the month (1-31).
func (s Schedule) OnDay(day int) (Schedule, error) {
	if err := fields.CheckRange("day", day, fields.MinDay, fields.MaxDay); err != nil {
		return Schedule{}, err
	}
	s.day = strconv.Itoa(day)
	return s, nil
}

// InMonth sets the month (1-12).
func (s Schedule) InMonth(month int) (Schedule, error) {
	if err := fields.CheckRange("month", month, fields.MinMonth, fields.MaxMonth); err != nil {
		return Schedule{}, err
	}
	s.month = strconv.Itoa(month)
	return s, nil
}

// OnWeekday sets the weekday from an int (0=Sunday), time.Weekday, or name.
func (s Schedule) OnWeekday(w any) (Schedule, error) {
	code, err := weekday.Normalize(w)
	if err != nil {
		return Schedule{}, err
	}
	return s.onCode(code), nil
}

// OnSunday through OnSaturday set the weekday to a fixed code.
func (s Schedule) OnSunday() Schedule    { return s.onCode(weekday.Sunday) }
func (s Schedule) OnMonday() Schedule    { return s.onCode(weekday.Monday) }
func (s Schedule) OnTuesday() Schedule   { return s.onCode(weekday.Tuesday) }
func (s Schedule) OnWednesday() Schedule { return s.onCode(weekday.Wednesday) }
func (s Schedule) OnThursday() Schedule  { return s.onCode(weekday.Thursday) }
func (s Schedule) OnFriday() Schedule    { return s.onCode(weekday.Friday) }
func (s Schedule) OnSaturday() Schedule  { return s.onCode(weekday.Saturday) }

func (s Schedule) onCode(code int) Schedule {
	s.weekday = strconv.Itoa(code)
	return s
}

// Minute through Weekday return the token of each field.
func (s Schedule) Minute() string  { return token(s.minute) }
func (s Schedule) Hour() string    { return token(s.hour) }
func (s Schedule) Day() string     { return token(s.day) }
func (s Schedule) Month() string   { return token(s.month) }
func (s Schedule) Weekday() string { return token(s.weekday) }

// Get returns the token of field f.
func (s Schedule) Get(f fields.Field) string {
	switch f {
	case fields.Minute:
		return s.Minute()
	case fields.Hour:
		return s.Hour()
	case fields.Day:
		return s.Day()
	case fields.Month:
		return s.Month()
	case fields.Weekday:
		return s.Weekday()
	}
	return ""
}

func (s Schedule) set(f fields.Field, token string) Schedule {
	switch f {
	case fields.Minute:
		s.minute = token
	case fields.Hour:
		s.hour = token
	case fields.Day:
		s.day = token
	case fields.Month:
		s.month = token
	case fields.Weekday:
		s.weekday = token
	}
	return s
}

// Fields returns the tokens keyed by field name.
func (s Schedule) Fields() map[string]string {
	m := make(map[string]string, len(fields.All))
	for _, f := range fields.All {
		m[f.String()] = s.Get(f)
	}
	return m
}

// Render returns the expression as "minute hour day month weekday".
func (s Schedule) Render() string {
	return strings.Join([]string{s.Minute(), s.Hour(), s.Day(), s.Month(), s.Weekday()}, " ")
}

// stored maps a token to its internal form.
func stored(tok string) string {
	if tok == fields.Wildcard {
		return ""
	}
	return tok
}

// token maps an internal value back to its cron token.
func token(v string) string {
	if v == "" {
		return fields.Wildcard
	}
	return v
}

func (s Schedule) String() string {
	return s.Render()
}

// MarshalText implements encoding.TextMarshaler.
func (s Schedule) MarshalText() ([]byte, error) {
	return []byte(s.Render()), nil
}
