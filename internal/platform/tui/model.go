package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger

	watcher *config.Watcher
	preset  config.DifficultyPreset

	exitOnBack bool // standalone play: Back leaves the program
	quitting   bool
	backToMenu bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for run and config events.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithConfigWatcher reloads the game config whenever the watched file
// changes. The preset, if any, is applied on top of every reload.
func WithConfigWatcher(w *config.Watcher, preset config.DifficultyPreset) ModelOption {
	return func(m *Model) {
		m.watcher = w
		m.preset = preset
	}
}

// WithExitOnBack makes Back on the game over or pause screen quit the
// program instead of flagging a return to the menu.
func WithExitOnBack() ModelOption {
	return func(m *Model) {
		m.exitOnBack = true
	}
}

// WithHoldWindows overrides the held-key emulation windows.
func WithHoldWindows(initial, repeat time.Duration) ModelOption {
	return func(m *Model) {
		m.hold = NewHoldTracker(initial, repeat)
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       NewHoldTracker(0, 0),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// configChangedMsg reports that the watched config file was written.
type configChangedMsg struct{ path string }

// configWatchErrMsg carries a watcher failure.
type configWatchErrMsg struct{ err error }

// watchConfig waits for the next watcher event.
func watchConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configWatchErrMsg{err: err}
		}
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tea.Batch(tickCmd(m.config.TickRate), watchConfig(m.watcher))
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

	case configChangedMsg:
		m.reloadConfig(msg.path)
		return m, watchConfig(m.watcher)

	case configWatchErrMsg:
		m.logger.Warn("config watcher error", "error", msg.err)
		return m, watchConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when no run is in motion.
	if action == core.ActionBack {
		idle := m.gameState.Phase != core.PhasePlaying || m.gameState.Paused
		if idle {
			m.backToMenu = true
			if m.exitOnBack {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil
	}

	m.keys.ApplyAction(action, &m.inputFrame, m.hold)
	return m, nil
}

// handleResize processes window resize events. The world is laid out in
// world units, so the run continues at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)

	prev := m.gameState.Phase
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Phase == core.PhasePlaying && prev != core.PhasePlaying && !m.gameState.Paused {
		m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
	}
	if result.RunEnded {
		m.recordRun(m.gameState)
	}

	// Clear edges for next frame; held directions persist.
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun logs a finished run and saves it to the leaderboard.
func (m Model) recordRun(state core.GameState) {
	m.logger.Info("run ended",
		"game", m.game.ID(),
		"score", state.Score,
		"high", state.HighScore,
		"theme", state.Theme,
		"ticks", state.Ticks,
	)

	if m.store == nil || state.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  state.Score,
		Theme:  state.Theme,
		Ticks:  state.Ticks,
	})
	if err != nil {
		m.logger.Error("could not save score", "error", err)
	}
}

// reloadConfig parses the changed file and hands it to the game for its
// next run. Broken files are logged and ignored.
func (m Model) reloadConfig(path string) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		m.logger.Warn("config reload rejected", "path", path, "error", err)
		return
	}
	if m.preset != "" {
		config.ApplyPlatformerPreset(&cfg, m.preset)
	}

	configurable, ok := m.game.(registry.Configurable)
	if !ok {
		m.logger.Debug("game does not accept config updates", "game", m.game.ID())
		return
	}
	configurable.UseConfig(cfg)
	m.logger.Info("config reloaded", "path", path)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model. Back on the game
// over or pause screen ends the program like Quit; back reports which of
// the two the user chose.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (back bool, err error) {
	opts = append([]ModelOption{WithExitOnBack()}, opts...)
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
