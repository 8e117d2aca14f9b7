//go:build nogui

package main

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

// errNoWindow is returned by --gui in builds tagged nogui.
var errNoWindow = errors.New("this build has no window support (built with -tags nogui)")

func runWindow(string, registry.Game, core.RuntimeConfig, *log.Logger) error {
	return errNoWindow
}
