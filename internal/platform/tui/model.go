package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// helpHeight is the number of terminal rows reserved for the help line.
const helpHeight = 1

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// configReporter is implemented by games that can fall back to default
// settings when their config file fails to load.
type configReporter interface {
	ConfigErr() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	started    time.Time
	termW      int
	termH      int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// ScreenH in cfg is the full terminal height; one row is kept for help.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.ScreenH > helpHeight {
		cfg.ScreenH -= helpHeight
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		started:    time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if r, ok := m.game.(configReporter); ok && r.ConfigErr() != nil {
		m.logger.Warn("config not loaded, using defaults", "game", m.game.ID(), "err", r.ConfigErr())
	}
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score,
			"level", m.gameState.Level, "duration", time.Since(m.started).Round(time.Second))
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW, m.termH = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.layout()

	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// layout fits the game screen into the terminal above the help view.
func (m *Model) layout() {
	if m.termH == 0 {
		return
	}
	m.config.ScreenW = m.termW
	m.config.ScreenH = max(m.termH-m.helpRows(), 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return helpHeight
	}
	rows := 0
	for _, col := range m.keys.Keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "level", m.gameState.Level)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// ScreenshotDir returns the directory screenshots are written to.
func ScreenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".blockfall", "screenshots"), nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := writeScreenshot(m.screen, m.game.ID(), time.Now())
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot stores the plain-text screen under ScreenshotDir.
func writeScreenshot(s *core.Screen, gameID string, now time.Time) (string, error) {
	dir, err := ScreenshotDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}
