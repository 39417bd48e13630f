package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration as YAML",
	Long: `Resolve every configuration layer (file, .env, environment, flags)
and print the result. Replaced invalid values are reported on stderr.

Examples:
  snake config show
  SNAKE_BOARD_SIZE=1 snake config show
  snake config show --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var flagShowDefaults bool

func init() {
	configShowCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the embedded default file instead")
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagShowDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd, logger)
	if err != nil {
		return err
	}

	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}
