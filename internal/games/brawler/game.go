package brawler

import (
	"fmt"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "brawler"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the default difficulty for new games.
// Unknown names select normal and return an error.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	difficultyPreset = p
	return err
}

// Game adapts World to the platform's registry.Game interface.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
	preset  config.DifficultyPreset
	notices []core.LogEvent
}

// New creates a new brawler instance using the CLI difficulty.
func New() *Game {
	return &Game{preset: difficultyPreset}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pixel Brawl"
}

// SetDifficulty overrides the preset used by the next Reset.
// Unknown names select normal and are reported through DrainLog.
func (g *Game) SetDifficulty(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		g.warn("unknown difficulty, using normal", "difficulty", preset, "err", err)
	}
	g.preset = p
}

func (g *Game) warn(msg string, keyvals ...any) {
	g.notices = append(g.notices, core.LogEvent{Msg: msg, Keyvals: keyvals, Warn: true})
}

// Reset loads tuning and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBrawler(configPath)
	if err != nil {
		g.warn("config load failed, using built-in defaults", "path", configPath, "err", err)
		cfg = config.DefaultBrawlerConfig()
	}
	config.ApplyBrawlerPreset(&cfg, g.preset)

	g.world = NewWorld(cfg, runtime.Seed)
}

// Reload re-reads a config file and applies it to the running world.
func (g *Game) Reload(path string) error {
	cfg, err := config.LoadBrawlerFile(path)
	if err != nil {
		return err
	}
	config.ApplyBrawlerPreset(&cfg, g.preset)
	if g.world != nil {
		g.world.SetConfig(cfg)
	}
	return nil
}

// World exposes the simulation for adapters that draw it directly.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	switch w.Phase() {
	case PhaseStart:
		if in.Has(core.ActionConfirm) {
			w.Start()
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			w.TogglePause()
		}
	case PhaseGameOver, PhaseVictory:
		if in.Has(core.ActionRestart) {
			w.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	w.Step(in.Keys)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.world.Phase()
	return core.GameState{
		Score:    g.world.TeamScore(),
		GameOver: phase == PhaseGameOver || phase == PhaseVictory,
		Paused:   g.world.Paused(),
	}
}

// Summary describes the current run for persistence.
func (g *Game) Summary() core.RunSummary {
	w := g.world
	outcome := "defeat"
	if w.Phase() == PhaseVictory {
		outcome = "victory"
	}
	return core.RunSummary{
		Outcome: outcome,
		Level:   w.Level(),
		Score1:  w.Player(1).Score,
		Score2:  w.Player(2).Score,
		Frames:  w.Frame(),
	}
}

// DrainLog returns pending adapter warnings followed by world events.
func (g *Game) DrainLog() []core.LogEvent {
	var events []Event
	if g.world != nil {
		events = g.world.DrainEvents()
	}
	if len(events) == 0 && len(g.notices) == 0 {
		return nil
	}
	out := make([]core.LogEvent, 0, len(g.notices)+len(events))
	out = append(out, g.notices...)
	g.notices = nil
	for _, e := range events {
		kv := []any{"event", e.Kind.String(), "level", e.Level, "frame", e.Frame}
		if e.Seat > 0 {
			kv = append(kv, "player", fmt.Sprintf("P%d", e.Seat))
		}
		if e.Name != "" {
			kv = append(kv, "name", e.Name)
		}
		if e.Points > 0 {
			kv = append(kv, "points", e.Points)
		}
		out = append(out, core.LogEvent{Msg: e.String(), Keyvals: kv, Verbose: e.Kind == EventMonsterKilled})
	}
	return out
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
