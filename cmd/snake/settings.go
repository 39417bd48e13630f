package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// newLogger builds the command logger writing to w at the --log-level level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "snake",
	}), nil
}

// resolveSettings runs every config layer and applies the flags the user
// actually set on cmd. Replaced values are logged as warnings.
func resolveSettings(cmd *cobra.Command, logger *log.Logger) (config.Config, error) {
	cfg, fixes, err := config.Resolve(flagConfig)
	if err != nil {
		return cfg, err
	}

	cfg = applyFlags(cmd, cfg)

	// Flags may reintroduce invalid values.
	cfg, flagFixes := config.Normalize(cfg)
	for _, f := range append(fixes, flagFixes...) {
		logger.Warn("config value replaced", "field", f.Field, "got", f.Got, "used", f.Used)
	}

	logger.Debug("config resolved", "board_size", cfg.BoardSize, "use_timer", cfg.UseTimer, "tick_ms", cfg.TickMS)
	return cfg, nil
}

// applyFlags overlays the explicitly changed setting flags onto c.
func applyFlags(cmd *cobra.Command, c config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("board-size") {
		c.BoardSize = flagBoardSize
	}
	if flags.Changed("timer") {
		c.UseTimer = flagTimer
	}
	if flags.Changed("tick-ms") {
		c.TickMS = flagTickMS
	}
	return c
}

// runtimeConfig converts resolved settings into the game runtime config.
func runtimeConfig(c config.Config, w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      w,
		ScreenH:      h,
		BoardSize:    c.BoardSize,
		TickInterval: c.TickInterval(),
		Seed:         flagSeed,
	}
}
