package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jdziat/fluentcron/pkg/presets"
	"github.com/jdziat/fluentcron/pkg/schedule"
)

func newDailyCmd(cfg *config) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Run every day at a fixed time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hour, minute, err := parseClock(at)
			if err != nil {
				return err
			}
			s, err := schedule.New().Daily().At(hour, minute)
			if err != nil {
				return err
			}
			return emit(cfg, cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVar(&at, "at", "0:00", "time of day as HH:MM")
	return cmd
}

func newWeeklyCmd(cfg *config) *cobra.Command {
	var on, at string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Run once a week on a weekday at a fixed time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hour, minute, err := parseClock(at)
			if err != nil {
				return err
			}
			s, err := schedule.New().Weekly().OnWeekday(weekdayArg(on))
			if err != nil {
				return err
			}
			if s, err = s.At(hour, minute); err != nil {
				return err
			}
			return emit(cfg, cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVar(&on, "on", "sunday", "weekday name or number (0=Sunday)")
	cmd.Flags().StringVar(&at, "at", "0:00", "time of day as HH:MM")
	return cmd
}

func newMonthlyCmd(cfg *config) *cobra.Command {
	var (
		day int
		at  string
	)

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Run once a month on a day at a fixed time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hour, minute, err := parseClock(at)
			if err != nil {
				return err
			}
			s, err := schedule.New().Monthly().OnDay(day)
			if err != nil {
				return err
			}
			if s, err = s.At(hour, minute); err != nil {
				return err
			}
			return emit(cfg, cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().IntVar(&day, "day", 1, "day of the month (1-31)")
	cmd.Flags().StringVar(&at, "at", "0:00", "time of day as HH:MM")
	return cmd
}

func newEveryCmd(cfg *config) *cobra.Command {
	var minutes, hours int

	cmd := &cobra.Command{
		Use:   "every",
		Short: "Run at a fixed minute or hour interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := schedule.New()
			var err error
			switch {
			case cmd.Flags().Changed("minutes"):
				s, err = s.EveryNMinutes(minutes)
			case cmd.Flags().Changed("hours"):
				s, err = s.EveryNHours(hours)
			default:
				err = errors.New("one of --minutes or --hours is required")
			}
			if err != nil {
				return err
			}
			return emit(cfg, cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", 0, "interval in minutes (1-59)")
	cmd.Flags().IntVar(&hours, "hours", 0, "interval in hours (1-23)")
	cmd.MarkFlagsMutuallyExclusive("minutes", "hours")
	return cmd
}

func newBuildCmd(cfg *config) *cobra.Command {
	var minute, hour, day, month, weekday string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an expression from explicit field tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := schedule.FromFields(minute, hour, day, month, weekday)
			if err != nil {
				return err
			}
			return emit(cfg, cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVar(&minute, "minute", "*", "minute token: *, 0-59 or */N")
	cmd.Flags().StringVar(&hour, "hour", "*", "hour token: *, 0-23 or */N")
	cmd.Flags().StringVar(&day, "day", "*", "day-of-month token: * or 1-31")
	cmd.Flags().StringVar(&month, "month", "*", "month token: * or 1-12")
	cmd.Flags().StringVar(&weekday, "weekday", "*", "weekday token: * or 0-6")
	return cmd
}

func newPresetsCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List well-known expressions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := presets.All()
			if len(args) == 1 {
				p, ok := presets.Lookup(args[0])
				if !ok {
					return errors.New("unknown preset " + args[0])
				}
				table = []presets.Preset{p}
			}
			if cfg.check() {
				if err := checkPresets(cfg, table, len(args) == 1); err != nil {
					return err
				}
			}
			return emitPresets(cfg, cmd.OutOrStdout(), table)
		},
	}
}
