// snake is a terminal Snake game played on a small wrap-around board.
//
// Usage:
//
//	snake play [variant]   - Play in the terminal (default variant from config)
//	snake list             - List available variants
//	snake serve            - Host the game over SSH
//	snake config show      - Print the resolved configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--board-size <n>    - Board edge length
//	--timer             - Move on a timer instead of once per key
//	--tick-ms <ms>      - Delay between timer moves
//	--seed <value>      - RNG seed for reproducible food placement
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig    string
	flagBoardSize int
	flagTimer     bool
	flagTickMS    int
	flagSeed      int64
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a wrap-around snake game for your terminal",
	Long: `Snake is played on a small square board whose edges wrap around.
Eat food to grow; fill every cell of the board to win.

Settings are layered, lowest to highest: built-in defaults, a YAML config
file, a .env file, SNAKE_* environment variables, then command-line flags.

Available commands:
  play     - Play in the terminal
  list     - Show the available variants
  serve    - Start SSH server for remote play
  config   - Inspect the resolved configuration

Examples:
  snake play
  snake play snake_step --board-size 4
  snake serve --ssh :2222
  SNAKE_TICK_MS=150 snake play`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagBoardSize, "board-size", 0, "Board edge length (overrides config)")
	pf.BoolVar(&flagTimer, "timer", true, "Move on a timer (overrides config)")
	pf.IntVar(&flagTickMS, "tick-ms", 0, "Milliseconds between timer moves (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
