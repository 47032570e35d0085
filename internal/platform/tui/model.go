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

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
)

// helpRows is the space below the game screen taken by the help bar.
const helpRows = 1

// defaultReleaseAfter is used when Options leaves ReleaseAfter unset.
const defaultReleaseAfter = 700 * time.Millisecond

// Game is the game the model drives.
// Flight keys arrive as held keys, platform actions through the input frame.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState

	KeyDown(key string)
	KeyUp(key string)
	Resize(width, height int)
	ClockTick(d time.Duration)
	SetSprite(s lander.Sprite)
	SetConfig(cfg config.LanderConfig)
	LossReason() string
}

// Options configures a TUI session.
type Options struct {
	Runtime      core.RuntimeConfig
	ReleaseAfter time.Duration // Synthetic key release delay
	SpritePath   string        // Empty loads the built-in sprite
	Watcher      *config.Watcher
	Reload       ReloadFunc
	Logger       *log.Logger
}

// Model is the Bubble Tea model for running the lander.
type Model struct {
	game         Game
	screen       *core.Screen
	config       core.RuntimeConfig
	keys         KeyMap
	help         help.Model
	inputFrame   core.InputFrame
	gameState    core.GameState
	lastTick     time.Time
	held         map[string]uint64 // Flight key -> sequence of its latest press
	seq          uint64
	releaseAfter time.Duration
	spritePath   string
	logger       *log.Logger
	quitting     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.ScreenH = max(1, cfg.ScreenH-helpRows)

	releaseAfter := opts.ReleaseAfter
	if releaseAfter <= 0 {
		releaseAfter = defaultReleaseAfter
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:         game,
		screen:       core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:       cfg,
		keys:         DefaultKeyMap(),
		help:         h,
		inputFrame:   core.NewInputFrame(),
		held:         make(map[string]uint64),
		releaseAfter: releaseAfter,
		spritePath:   opts.SpritePath,
		logger:       logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("flight started", "game", m.game.ID(), "screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	return tea.Batch(
		tickCmd(m.config.TickRate),
		clockCmd(),
		loadSpriteCmd(m.spritePath),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case keyReleaseMsg:
		return m.handleRelease(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ClockMsg:
		m.game.ClockTick(clockInterval)
		return m, clockCmd()

	case SpriteLoadedMsg:
		m.game.SetSprite(msg.Sprite)
		m.logger.Debug("sprite loaded", "size", fmt.Sprintf("%dx%d", msg.Sprite.Width, msg.Sprite.Height))
		return m, nil

	case SpriteFailedMsg:
		m.logger.Warn("sprite unavailable, drawing placeholder", "path", msg.Path, "error", msg.Err)
		return m, nil

	case ConfigReloadedMsg:
		m.game.SetConfig(msg.Config)
		if msg.Config.Input.ReleaseAfter > 0 {
			m.releaseAfter = msg.Config.Input.ReleaseAfter
		}
		m.logger.Info("config reloaded, applies on restart", "path", msg.Path, "profile", msg.Config.Profile)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Terminals never report releases: every press or auto-repeat renews
	// the hold, and a release is synthesized once they stop.
	if name := m.keys.FlightKey(msg); name != "" {
		m.seq++
		m.held[name] = m.seq
		m.game.KeyDown(name)
		return m, releaseCmd(name, m.seq, m.releaseAfter)
	}

	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleRelease releases a flight key unless it was pressed again since.
func (m Model) handleRelease(msg keyReleaseMsg) (tea.Model, tea.Cmd) {
	if seq, ok := m.held[msg.key]; !ok || seq != msg.seq {
		return m, nil
	}
	delete(m.held, msg.key)
	m.game.KeyUp(msg.key)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(1, msg.Height-helpRows)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		clear(m.held)
		m.inputFrame.Clear()
		m.logger.Info("flight restarted", "game", m.game.ID())
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.Delta = delta
	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("flight lost", "reason", m.game.LossReason())
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen to ~/.lander/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".lander", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
// When opts carries a watcher, config changes are delivered to the game
// until the watcher is closed.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if opts.Watcher != nil && opts.Reload != nil {
		go forwardReloads(p.Send, opts.Watcher, opts.Reload, model.logger)
	}

	_, err := p.Run()
	return err
}
