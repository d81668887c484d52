package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/platform/tui"
	"github.com/vovakirdan/tui-brawler/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right, start with Enter, open the scoreboard
with Tab. After a run you return to the menu to play again.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right/h/l - Change difficulty
  Enter/Space    - Select
  Tab            - Scoreboard
  Q              - Quit

Examples:
  brawler menu
  brawler menu --fps 30
  brawler menu --db ./brawler.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	watcher, watchPath := watchConfig(logger)
	if watcher != nil {
		defer watcher.Close()
	}

	preset := flagPreset
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep any size changes
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if ds, ok := game.(registry.DifficultySetter); ok {
			ds.SetDifficulty(string(preset))
		}
		logger.Info("game started", "game", game.ID(), "difficulty", preset)

		cfg.Seed = seed()
		if err := tui.Run(game, cfg, tui.Options{
			Store:      store,
			Logger:     logger,
			Watcher:    watcher,
			ConfigPath: watchPath,
			HoldTicks:  flagHoldTicks,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
