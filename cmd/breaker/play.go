package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout"
	"github.com/vovakirdan/tui-breaker/internal/platform/tui"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
	flagLogFile    string
	flagVerbose    bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: breakout).

Controls:
  Left/A, Right/D  - Move the paddle
  Space/Enter      - Start, continue after a lost life, back to title
  Ctrl+S           - Save a text screenshot (terminal only)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, wider paddle, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Narrow fast paddle, long freezes, starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  breaker play
  breaker play breakout --difficulty easy
  breaker play --gui
  breaker play --config ./my-breakout.toml --log-file /tmp/breaker.log --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	playCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug events")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'breaker list' to see available games)", gameID)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagVerbose)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting", "game", gameID, "gui", flagGUI, "fps", cfg.TickRate, "seed", cfg.Seed)

	if flagGUI {
		return runWindow(gameID, game, cfg, logger)
	}

	var opts tui.Options
	opts.Logger = logger
	if bg, ok := game.(*breakout.Game); ok {
		opts.Hold = time.Duration(bg.Config().Input.HoldMillis) * time.Millisecond
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newLogger opens the log destination. With no path, logs are discarded
// since the terminal UI owns stdout.
func newLogger(path string, verbose bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breaker",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
