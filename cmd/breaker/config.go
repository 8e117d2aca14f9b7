package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does and prints it.
The output is a complete file that can be edited and passed back with --config.

Search order:
  --config <path>
  ~/.breaker/configs/breakout.{yaml,toml}
  ./configs/breakout.{yaml,toml}
  built-in defaults

Examples:
  breaker config > my.yaml
  breaker config --difficulty easy --format toml > my.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithPreset(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	out, err := config.Encode(cfg, config.Format(flagFormat))
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
	return err
}
