// Package commands implements the fluentcron CLI.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "FLUENTCRON"

// config holds settings shared by every subcommand.
type config struct {
	v      *viper.Viper
	logger *slog.Logger
}

func (c *config) output() string { return strings.ToLower(c.v.GetString("output")) }
func (c *config) check() bool    { return c.v.GetBool("check") }

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	cfg := &config{v: viper.New(), logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "fluentcron",
		Short: "Build five-field cron expressions",
		Long: `fluentcron renders cron expressions ("minute hour day month weekday")
from readable flags, and lists well-known presets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if cfg.v.GetBool("verbose") {
				level = slog.LevelDebug
			}
			cfg.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			switch cfg.output() {
			case formatText, formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", cfg.v.GetString("output"))
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("output", "o", formatText, "output format: text, json or yaml")
	flags.Bool("check", false, "verify the expression with a standard five-field cron parser")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")

	cfg.v.SetEnvPrefix(envPrefix)
	cfg.v.AutomaticEnv()
	for _, name := range []string{"output", "check", "verbose"} {
		_ = cfg.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newDailyCmd(cfg),
		newWeeklyCmd(cfg),
		newMonthlyCmd(cfg),
		newEveryCmd(cfg),
		newBuildCmd(cfg),
		newPresetsCmd(cfg),
	)
	return root
}
