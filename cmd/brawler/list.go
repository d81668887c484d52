package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/registry"

	// Register the brawler
	_ "github.com/vovakirdan/tui-brawler/internal/games/brawler"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games, difficulty presets and the config in use",
	Long: `Shows the registered games, the difficulty presets with the one
selected by --difficulty marked, and the config file that play, menu and
serve will load.`,
	Run: runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Games:")
	for _, g := range registry.List() {
		fmt.Fprintf(out, "  %-8s %s\n", g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Difficulty:")
	for _, p := range config.Presets {
		mark := " "
		if p == flagPreset {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %-8s %s\n", mark, p, p.Hint())
	}

	fmt.Fprintln(out)
	path := config.ResolveBrawlerPath(flagConfig)
	if path == "" {
		path = "built-in defaults"
	}
	fmt.Fprintf(out, "Config: %s\n", path)
}
