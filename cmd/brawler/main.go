// brawler is a two-player co-op arena brawler for the terminal.
//
// Usage:
//
//	brawler list              - List available games
//	brawler play              - Start a run right away
//	brawler menu              - Title menu with difficulty picker and scoreboard
//	brawler serve             - Start SSH server for remote play
//	brawler scores            - Show the best runs
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60, env BRAWLER_FPS)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/brawler.db, env BRAWLER_DB)
//	--config <path>       - Custom brawler.yaml (env BRAWLER_CONFIG)
//	--difficulty <name>   - easy, normal or hard
//	--watch               - Reload the config file when it changes
//	--log <path>          - Append game events to a log file (env BRAWLER_LOG)
//
// Variables from a .env file in the working directory are loaded first.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
	flagWatch      bool
	flagHoldTicks  int

	// Parsed from --difficulty by checkFlags
	flagPreset config.DifficultyPreset
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brawler",
	Short: "Pixel Brawl - co-op arena brawler in your terminal",
	Long: `Pixel Brawl is a two-player co-op brawler. Fight waves of monsters
on every level and beat the bosses waiting on levels 2, 3 and 4. Clearing
the last boss wins the run.

Available commands:
  list     - Show all available games
  play     - Start a run directly
  menu     - Title menu with difficulty picker
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  brawler play
  brawler play --difficulty hard
  brawler menu --config ./brawler.yaml --watch
  brawler serve --ssh :2222
  brawler scores --recent`,
	SilenceUsage:      true,
	PersistentPreRunE: checkFlags,
}

func init() {
	// .env is optional
	_ = godotenv.Load()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envInt("BRAWLER_FPS", 60), "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("BRAWLER_DB", "~/.arcade/brawler.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envOr("BRAWLER_CONFIG", ""), "Path to custom brawler config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", envOr("BRAWLER_DIFFICULTY", "normal"), "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", envOr("BRAWLER_LOG", ""), "Append game events to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every kill and hit, not just milestones")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	rootCmd.PersistentFlags().IntVar(&flagHoldTicks, "hold-ticks", 0, "Ticks a key stays held after its last press (0 = default)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// seed returns the --seed value, or a time-based one when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}
}

// checkFlags rejects an unknown --difficulty or an unreadable --config
// and passes both to the brawler package before any game is created.
func checkFlags(_ *cobra.Command, _ []string) error {
	preset, err := config.CheckStartup(flagDifficulty, flagConfig)
	if err != nil {
		return err
	}
	flagPreset = preset
	brawler.SetConfigPath(flagConfig)
	return brawler.SetDifficultyPreset(string(preset))
}

// newLogger writes to the --log file, or discards everything when unset.
// The returned func closes the file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "brawler",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// watchConfig starts a watcher on the config file in use when --watch is
// set. It returns a nil watcher when there is nothing to watch.
func watchConfig(logger *log.Logger) (*config.Watcher, string) {
	if !flagWatch {
		return nil, ""
	}

	path := config.ResolveBrawlerPath(flagConfig)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch ignored, no config file found (using built-in defaults)")
		return nil, ""
	}

	w, err := config.WatchFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, err)
		return nil, ""
	}
	logger.Info("watching config", "path", path)
	return w, path
}
