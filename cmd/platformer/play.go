package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a run",
	Long: `Start playing. The game defaults to the platformer.

Controls:
  Left/A, Right/D  - Run (hold)
  Space/Up/W       - Jump
  Enter            - Start
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Leave (after game over or while paused)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - No progression, gentle world
  normal - Progression from 30% difficulty
  hard   - Progression from 70% difficulty
  fixed  - No progression, stays at config's initial level

With --watch the config file is reloaded whenever it is saved; changes
apply from the next run.

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play --config ./my-platformer.yaml --watch
  platformer play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags checks that the selected config loads and hands --config
// and --difficulty to the game packages.
func applyGameFlags() error {
	if _, err := config.LoadPlatformer(flagConfig); err != nil {
		return err
	}
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openStore opens the leaderboard, continuing without one on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "dsn", flagDBPath, "error", err)
		return nil
	}
	return store
}

// watchedConfigPath returns the file --watch should follow: the custom
// config, else the first discovered one.
func watchedConfigPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	for _, path := range config.SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// modelOptions builds the TUI options shared by play and menu.
func modelOptions(logger *log.Logger) ([]tui.ModelOption, func()) {
	opts := []tui.ModelOption{tui.WithLogger(logger)}
	if !flagWatch {
		return opts, func() {}
	}

	path := watchedConfigPath()
	if path == "" {
		logger.Warn("--watch given but no config file found")
		return opts, func() {}
	}
	watcher, err := config.NewWatcher(path)
	if err != nil {
		logger.Warn("config watch disabled", "error", err)
		return opts, func() {}
	}
	logger.Info("watching config", "path", path)
	opts = append(opts, tui.WithConfigWatcher(watcher, config.ParsePreset(flagDifficulty)))
	return opts, func() { _ = watcher.Close() }
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fatal("unknown game %q (run 'platformer list' to see available games)", gameID)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fatal("unknown difficulty %q", flagDifficulty)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	if err := applyGameFlags(); err != nil {
		fatal("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts, stopWatch := modelOptions(logger)
	defer stopWatch()

	if _, err := tui.Run(game, store, terminalConfig(), opts...); err != nil {
		logger.Error("game exited with error", "error", err)
		fatal("running game: %v", err)
	}
}
