// brawler-gui runs Pixel Brawl in a desktop window.
//
// Usage:
//
//	brawler-gui [--difficulty hard] [--config ./brawler.yaml --watch]
//
// Both players share the keyboard: P1 uses W/A/S/D and Space, P2 the
// arrows and Enter. P pauses, R restarts after game over, Q or Esc quits.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/platform/gui"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
	flagWatch      bool
)

var rootCmd = &cobra.Command{
	Use:          "brawler-gui",
	Short:        "Pixel Brawl in a desktop window",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PreRunE:      checkFlags,
	RunE:         run,
}

func init() {
	// .env is optional
	_ = godotenv.Load()

	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", envOr("BRAWLER_DB", "~/.arcade/brawler.db"), "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", envOr("BRAWLER_CONFIG", ""), "Path to custom brawler config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", envOr("BRAWLER_DIFFICULTY", "normal"), "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every kill and hit, not just milestones")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// checkFlags rejects an unknown --difficulty or an unreadable --config
// before the window opens.
func checkFlags(_ *cobra.Command, _ []string) error {
	preset, err := config.CheckStartup(flagDifficulty, flagConfig)
	if err != nil {
		return err
	}
	brawler.SetConfigPath(flagConfig)
	return brawler.SetDifficultyPreset(string(preset))
}

func run(_ *cobra.Command, _ []string) error {
	// No TUI owns the terminal, so logs go to stderr.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "brawler-gui",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	opts := gui.Options{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if flagWatch {
		if path := config.ResolveBrawlerPath(flagConfig); path != "" {
			w, err := config.WatchFile(path)
			if err != nil {
				logger.Warn("cannot watch config", "path", path, "err", err)
			} else {
				defer w.Close()
				opts.Watcher = w
				opts.ConfigPath = path
			}
		} else {
			logger.Warn("--watch ignored, no config file found")
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}
	if err := gui.Run(brawler.New(), runtime, opts); err != nil {
		return fmt.Errorf("brawler-gui: %w", err)
	}
	return nil
}
