package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick Play to start a run or High Scores to view the leaderboard. Leaving a
finished run returns to the menu, so the in-memory leaderboard fills up
over the session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  platformer menu
  platformer menu --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	if err := applyGameFlags(); err != nil {
		fatal("%v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts, stopWatch := modelOptions(logger)
	defer stopWatch()

	// One game instance keeps the session high score across runs.
	game, err := registry.Create(defaultGameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(store, game.ID(), game.Title(), cfg)
		if err != nil {
			fatal("menu: %v", err)
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoicePlay:
			back, err := tui.Run(game, store, cfg, opts...)
			if err != nil {
				fatal("running game: %v", err)
			}
			if !back {
				return
			}

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, game.ID(), game.Title(), cfg.TickRate, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fatal("scoreboard: %v", err)
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
