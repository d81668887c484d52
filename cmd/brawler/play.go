package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/platform/tui"
	"github.com/vovakirdan/tui-brawler/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start a run of the brawler (or another registered game).

Controls:
  P1: W/A/S/D move, Space attack
  P2: Arrows move, Enter attack
  Enter/Space - Start from the title screen
  P           - Pause
  R           - Restart (after game over)
  B/Esc       - Back (while paused or after game over)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Terminals do not report key releases, so a movement key stays held for
--hold-ticks ticks after its last press.

Difficulty options:
  easy   - More health, softer monster bites, slower spawns
  normal - Tuning as configured
  hard   - Less health, harder monster bites, faster spawns

Examples:
  brawler play
  brawler play --difficulty hard
  brawler play --config ./my-brawler.yaml --watch
  brawler play --seed 42 --log ./brawler.log -v`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := brawler.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brawler list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	watcher, watchPath := watchConfig(logger)

	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		Watcher:    watcher,
		ConfigPath: watchPath,
		HoldTicks:  flagHoldTicks,
	})

	// Clean up before potential exit
	if watcher != nil {
		watcher.Close()
	}
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
