//go:build !nogui

package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/platform/gui"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

// runWindow plays the game in a desktop window.
func runWindow(gameID string, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	sg, ok := game.(gui.SceneGame)
	if !ok {
		return fmt.Errorf("game %q cannot run in a window", gameID)
	}
	return gui.Run(sg, cfg, logger)
}
