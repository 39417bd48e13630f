package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagDebug   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Without a variant, use_timer picks one: "snake" moves on a timer,
"snake_step" moves one cell per accepted direction key.

Controls:
  Arrows/WASD/hjkl - Turn (the snake cannot reverse)
  P/Esc            - Pause (timer mode)
  R                - Restart
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play snake_step
  snake play --board-size 8 --tick-ms 150
  snake play --debug --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the game state under the board")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is taken by the game)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut, flagLogLevel)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd, logger)
	if err != nil {
		return err
	}

	variant := settings.Variant()
	if len(args) == 1 {
		variant = args[0]
	}

	game, err := registry.Create(variant)
	if err != nil {
		return fmt.Errorf("%w (run 'snake list' to see variants)", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := runtimeConfig(settings, width, height)
	if err := tui.Run(game, cfg, tui.Options{Debug: flagDebug, Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
