package fluentcron

import (
	"github.com/jdziat/fluentcron/pkg/presets"
	"github.com/jdziat/fluentcron/pkg/weekday"
)

// Weekday codes, 0 is Sunday.
const (
	Sunday    = weekday.Sunday
	Monday    = weekday.Monday
	Tuesday   = weekday.Tuesday
	Wednesday = weekday.Wednesday
	Thursday  = weekday.Thursday
	Friday    = weekday.Friday
	Saturday  = weekday.Saturday
)

// Well-known expressions
const (
	EveryMinute          = presets.EveryMinute
	Every5Minutes        = presets.Every5Minutes
	Every15Minutes       = presets.Every15Minutes
	Every30Minutes       = presets.Every30Minutes
	EveryHour            = presets.EveryHour
	Every2Hours          = presets.Every2Hours
	Every6Hours          = presets.Every6Hours
	Every12Hours         = presets.Every12Hours
	DailyMidnight        = presets.DailyMidnight
	DailyNoon            = presets.DailyNoon
	WeeklySundayMidnight = presets.WeeklySundayMidnight
	WeeklyMondayMidnight = presets.WeeklyMondayMidnight
	MonthlyFirstMidnight = presets.MonthlyFirstMidnight
	YearlyJanFirst       = presets.YearlyJanFirst

	// MonthlyLastDay uses the non-standard L token. Not every cron
	// implementation accepts it.
	MonthlyLastDay = presets.MonthlyLastDay
)

// NormalizeWeekday converts an int, time.Weekday, or weekday name to its cron code.
func NormalizeWeekday(v any) (int, error) {
	return weekday.Normalize(v)
}

// DailyAt returns an expression that runs every day at hour:minute.
func DailyAt(hour, minute int) (string, error) {
	return presets.DailyAt(hour, minute)
}

// WeeklyOn returns an expression that runs on weekday at hour:minute.
func WeeklyOn(day any, hour, minute int) (string, error) {
	return presets.WeeklyOn(day, hour, minute)
}

// MonthlyOnDay returns an expression that runs on day of the month at hour:minute.
func MonthlyOnDay(day, hour, minute int) (string, error) {
	return presets.MonthlyOnDay(day, hour, minute)
}

// EveryNMinutes returns an expression that runs every n minutes.
func EveryNMinutes(n int) (string, error) {
	return presets.EveryNMinutes(n)
}

// EveryNHours returns an expression that runs every n hours.
func EveryNHours(n int) (string, error) {
	return presets.EveryNHours(n)
}

// Presets returns the table of well-known expressions.
func Presets() []Preset {
	return presets.All()
}
