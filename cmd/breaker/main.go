// breaker is a brick breaker for the terminal, with an optional desktop window.
//
// Usage:
//
//	breaker list                 - List available games
//	breaker play [game]          - Play a game (default: breakout)
//	breaker config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breaker/internal/games/breakout"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breaker",
	Short: "Breaker - a brick breaker in your terminal",
	Long: `Breaker is a brick breaker: a paddle deflects balls into a grid of
blocks. Clear the grid to win; lose every ball and you lose a life.

Available commands:
  list     - Show all available games
  play     - Play a game
  config   - Print the effective configuration

Examples:
  breaker play
  breaker play --difficulty hard
  breaker play --gui
  breaker config --format toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
