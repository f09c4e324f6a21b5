package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/jdziat/fluentcron/pkg/presets"
	"github.com/jdziat/fluentcron/pkg/schedule"
	"github.com/jdziat/fluentcron/pkg/weekday"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var standardParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// result is the structured form of a rendered schedule.
type result struct {
	Expr   string            `json:"expr" yaml:"expr"`
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// emit writes s in the configured format, checking it first if requested.
func emit(cfg *config, w io.Writer, s schedule.Schedule) error {
	expr := s.Render()
	cfg.logger.Debug("rendered schedule", "expr", expr)
	if code, err := strconv.Atoi(s.Weekday()); err == nil {
		cfg.logger.Debug("weekday restriction", "weekday", weekday.Name(code))
	}

	if cfg.check() {
		if _, err := standardParser.Parse(expr); err != nil {
			return fmt.Errorf("expression %q rejected by standard parser: %w", expr, err)
		}
	}

	switch cfg.output() {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result{Expr: expr, Fields: s.Fields()})
	case formatYAML:
		return yaml.NewEncoder(w).Encode(result{Expr: expr, Fields: s.Fields()})
	default:
		_, err := fmt.Fprintln(w, expr)
		return err
	}
}

// checkPresets parses each standard preset with the standard parser.
// Non-standard presets fail when asked for by name and are skipped with a
// warning when listing the whole table.
func checkPresets(cfg *config, table []presets.Preset, byName bool) error {
	for _, p := range table {
		if !p.Standard {
			if byName {
				return fmt.Errorf("preset %q (%s) uses a non-standard cron extension", p.Name, p.Expr)
			}
			cfg.logger.Warn("skipping check of non-standard preset", "name", p.Name, "expr", p.Expr)
			continue
		}
		if _, err := standardParser.Parse(p.Expr); err != nil {
			return fmt.Errorf("preset %q rejected by standard parser: %w", p.Name, err)
		}
	}
	return nil
}

// emitPresets writes the preset table in the configured format.
func emitPresets(cfg *config, w io.Writer, table []presets.Preset) error {
	switch cfg.output() {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	case formatYAML:
		return yaml.NewEncoder(w).Encode(table)
	}

	for _, p := range table {
		line := fmt.Sprintf("%-24s %s", p.Name, p.Expr)
		if !p.Standard {
			line += "  (non-standard)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// parseClock parses "H", "HH", "H:MM" or "HH:MM". Range checks are left
// to the schedule builder so errors name the field.
func parseClock(s string) (hour, minute int, err error) {
	h, m, hasMinute := strings.Cut(strings.TrimSpace(s), ":")
	if hour, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	if hasMinute {
		if minute, err = strconv.Atoi(m); err != nil {
			return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", s)
		}
	}
	return hour, minute, nil
}

// weekdayArg passes numeric weekdays through as ints and names as strings.
func weekdayArg(s string) any {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return s
}
