// Package presets provides one-call shortcuts over the schedule builder and
// a table of well-known cron expressions.
package presets

import (
	"github.com/jdziat/fluentcron/pkg/schedule"
)

// Well-known expressions.
const (
	EveryMinute    = "* * * * *"
	Every5Minutes  = "*/5 * * * *"
	Every15Minutes = "*/15 * * * *"
	Every30Minutes = "*/30 * * * *"
	EveryHour      = "0 * * * *"
	Every2Hours    = "0 */2 * * *"
	Every6Hours    = "0 */6 * * *"
	Every12Hours   = "0 */12 * * *"

	DailyMidnight = "0 0 * * *"
	DailyNoon     = "0 12 * * *"

	WeeklySundayMidnight = "0 0 * * 0"
	WeeklyMondayMidnight = "0 0 * * 1"

	MonthlyFirstMidnight = "0 0 1 * *"

	// MonthlyLastDay uses the non-standard L token. Not every cron
	// implementation accepts it.
	MonthlyLastDay = "0 0 L * *"

	YearlyJanFirst = "0 0 1 1 *"
)

// Preset is a named well-known expression.
type Preset struct {
	Name string `json:"name" yaml:"name"`
	Expr string `json:"expr" yaml:"expr"`
	// Standard is false when Expr relies on a cron extension.
	Standard bool `json:"standard" yaml:"standard"`
}

var all = []Preset{
	{"every-minute", EveryMinute, true},
	{"every-5-minutes", Every5Minutes, true},
	{"every-15-minutes", Every15Minutes, true},
	{"every-30-minutes", Every30Minutes, true},
	{"every-hour", EveryHour, true},
	{"every-2-hours", Every2Hours, true},
	{"every-6-hours", Every6Hours, true},
	{"every-12-hours", Every12Hours, true},
	{"daily-midnight", DailyMidnight, true},
	{"daily-noon", DailyNoon, true},
	{"weekly-sunday-midnight", WeeklySundayMidnight, true},
	{"weekly-monday-midnight", WeeklyMondayMidnight, true},
	{"monthly-first-midnight", MonthlyFirstMidnight, true},
	{"monthly-last-day", MonthlyLastDay, false},
	{"yearly-jan-first", YearlyJanFirst, true},
}

// All returns the preset table in declaration order.
func All() []Preset {
	out := make([]Preset, len(all))
	copy(out, all)
	return out
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, bool) {
	for _, p := range all {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// DailyAt returns an expression that runs every day at hour:minute.
func DailyAt(hour, minute int) (string, error) {
	s, err := schedule.New().Daily().At(hour, minute)
	if err != nil {
		return "", err
	}
	return s.Render(), nil
}

// WeeklyOn returns an expression that runs once a week on weekday at hour:minute.
// weekday accepts anything schedule.Schedule.OnWeekday does.
func WeeklyOn(weekday any, hour, minute int) (string, error) {
	s, err := schedule.New().Weekly().OnWeekday(weekday)
	if err != nil {
		return "", err
	}
	if s, err = s.At(hour, minute); err != nil {
		return "", err
	}
	return s.Render(), nil
}

// MonthlyOnDay returns an expression that runs once a month on day at hour:minute.
func MonthlyOnDay(day, hour, minute int) (string, error) {
	s, err := schedule.New().Monthly().OnDay(day)
	if err != nil {
		return "", err
	}
	if s, err = s.At(hour, minute); err != nil {
		return "", err
	}
	return s.Render(), nil
}

// EveryNMinutes returns an expression that runs every n minutes.
func EveryNMinutes(n int) (string, error) {
	s, err := schedule.New().EveryNMinutes(n)
	if err != nil {
		return "", err
	}
	return s.Render(), nil
}

// EveryNHours returns an expression that runs every n hours.
// The minute field stays "*", matching the builder.
func EveryNHours(n int) (string, error) {
	s, err := schedule.New().EveryNHours(n)
	if err != nil {
		return "", err
	}
	return s.Render(), nil
}
