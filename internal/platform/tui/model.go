package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

// DefaultHold is how long a movement key stays held after its last report.
const DefaultHold = 150 * time.Millisecond

// Options tunes the terminal driver.
type Options struct {
	Hold   time.Duration // Movement key hold window, zero for DefaultHold
	Logger *log.Logger   // Nil discards log output
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	hold     Hold
	pending  core.InputFrame // Edge intents collected since the last tick
	lastTick time.Time
	state    core.GameState
	log      *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    NewHold(opts.Hold),
		pending: core.NewInputFrame(),
		log:     opts.Logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Debug("terminal driver started", "game", m.game.ID(), "fps", m.config.TickRate, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, at time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	for _, a := range m.keys.Actions(msg) {
		switch a {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionLeft, core.ActionRight:
			m.hold.Press(a, at)
		default:
			m.pending.Set(a)
		}
	}
	return m, nil
}

// handleResize keeps the screen buffer in step with the terminal. The world
// size is fixed, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	return m, nil
}

// handleTick runs one simulation step with the time elapsed since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(max(1, m.config.TickRate))
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	frame := m.pending.Clone()
	m.hold.Apply(&frame, now)

	result := m.game.Step(frame, core.FrameTime{
		Delta: dt.Seconds(),
		Now:   float64(now.UnixNano()) / float64(time.Millisecond),
	})
	if result.State.Mode != m.state.Mode {
		m.log.Debug("state", "mode", result.State.Mode, "score", result.State.Score, "lives", result.State.Lives)
	}
	m.state = result.State

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home dir: %w", err)
	}
	dir := filepath.Join(home, ".breaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}
	m.log.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
