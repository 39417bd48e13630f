// Package config provides layered configuration loading for the Snake game:
// embedded YAML defaults, user/local YAML files, .env files and environment
// variables, normalized before they reach the engine.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Built-in defaults, used whenever a value is missing or invalid.
const (
	DefaultBoardSize = 5
	DefaultUseTimer  = true
	DefaultTickMS    = 300
)

// Config contains all user-facing settings.
type Config struct {
	BoardSize int  `yaml:"board_size"`
	UseTimer  bool `yaml:"use_timer"`
	TickMS    int  `yaml:"tick_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BoardSize: DefaultBoardSize,
		UseTimer:  DefaultUseTimer,
		TickMS:    DefaultTickMS,
	}
}

// TickInterval returns the tick delay as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Variant returns the registry ID matching the timer setting.
func (c Config) Variant() string {
	if c.UseTimer {
		return "snake"
	}
	return "snake_step"
}

// Fix describes one value replaced during normalization.
type Fix struct {
	Field string
	Got   string
	Used  string
}

func (f Fix) String() string {
	return fmt.Sprintf("%s: %s is invalid, using %s", f.Field, f.Got, f.Used)
}

// Normalize replaces invalid values with defaults and reports each replacement.
// The engine never sees a board outside [2, core.MaxBoardSize] or a non-positive tick.
func Normalize(c Config) (Config, []Fix) {
	var fixes []Fix

	if c.BoardSize <= 1 || c.BoardSize > core.MaxBoardSize {
		fixes = append(fixes, Fix{
			Field: "board_size",
			Got:   fmt.Sprint(c.BoardSize),
			Used:  fmt.Sprint(DefaultBoardSize),
		})
		c.BoardSize = DefaultBoardSize
	}

	if c.TickMS <= 0 {
		fixes = append(fixes, Fix{
			Field: "tick_ms",
			Got:   fmt.Sprint(c.TickMS),
			Used:  fmt.Sprint(DefaultTickMS),
		})
		c.TickMS = DefaultTickMS
	}

	return c, fixes
}
