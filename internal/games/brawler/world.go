// Package brawler implements Pixel Brawl, a two-player co-op brawler.
// Both players share one keyboard and fight waves of monsters, then three
// bosses. The World type holds the whole simulation; Game adapts it to the
// platform's registry interface.
package brawler

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Stage is the spawn/progression state while playing.
type Stage int

const (
	StageNormal Stage = iota
	StageTransition
	StageBoss
)

func (s Stage) String() string {
	switch s {
	case StageNormal:
		return "normal"
	case StageTransition:
		return "transition"
	case StageBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Messages shown in the HUD.
const (
	msgFight = "Fight the monsters!"
	msgPress = "Press Enter or Space to start"
)

// World is the complete simulation state of one brawler session.
type World struct {
	cfg    config.BrawlerConfig
	tables tables
	rng    *rand.Rand

	players  [2]*Player
	monsters []*Monster
	boss     *Boss

	phase      Phase
	paused     bool
	stage      Stage
	level      int
	spawnTimer int
	transition int // frames left in StageTransition
	kills      int // kills on the current normal level
	frame      int
	message    string
	events     []Event
}

// NewWorld creates a world on the title screen.
func NewWorld(cfg config.BrawlerConfig, seed int64) *World {
	w := &World{}
	w.applyConfig(cfg)
	w.Reset(seed)
	return w
}

// Reset returns to the title screen with fresh start-of-game values.
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.init()
	w.phase = PhaseStart
	w.message = msgPress
}

// Start begins play from the title screen. It is ignored in other phases.
func (w *World) Start() {
	if w.phase != PhaseStart {
		return
	}
	w.begin()
}

// Restart re-initializes every entity and counter and enters play directly.
func (w *World) Restart() {
	w.begin()
}

func (w *World) begin() {
	w.init()
	w.phase = PhasePlaying
	w.message = msgFight
	w.emit(Event{Kind: EventLevelStarted})
}

// init resets entities and counters to start-of-game values. The RNG is kept.
func (w *World) init() {
	aw, ah := w.cfg.Arena.Width, w.cfg.Arena.Height
	pc := w.cfg.Player
	w.players[0] = newPlayer(1, aw/8, ah/2, core.ColorGreen, P1Controls, pc)
	w.players[1] = newPlayer(2, aw*7/8, ah/2, core.ColorRed, P2Controls, pc)
	w.monsters = nil
	w.boss = nil
	w.paused = false
	w.stage = StageNormal
	w.level = 1
	w.spawnTimer = 0
	w.transition = 0
	w.kills = 0
	w.frame = 0
	w.events = nil
}

// SetConfig re-tunes a running world. Existing entities keep their stats;
// later spawns and attacks use the new values.
func (w *World) SetConfig(cfg config.BrawlerConfig) {
	w.applyConfig(cfg)
}

func (w *World) applyConfig(cfg config.BrawlerConfig) {
	w.cfg = cfg
	w.tables = resolveTables(cfg)
}

// TogglePause flips the pause flag while playing.
func (w *World) TogglePause() {
	if w.phase == PhasePlaying {
		w.paused = !w.paused
	}
}

// Step advances the simulation by one frame using the held-key snapshot.
// It does nothing unless the game is playing and not paused.
func (w *World) Step(keys core.KeySet) {
	if w.phase != PhasePlaying || w.paused {
		return
	}
	w.frame++

	for _, p := range w.players {
		w.updatePlayer(p, keys)
	}
	w.updateMonsters()
	w.updateBoss()

	w.handleBossDeath()
	if w.phase != PhasePlaying {
		return
	}
	w.checkLevelCleared()
	w.updateSpawning()
	w.updateTransition()
	w.checkGameOver()
}

// checkGameOver ends the run when both players are down.
func (w *World) checkGameOver() {
	if w.phase != PhasePlaying {
		return
	}
	if w.players[0].Down() && w.players[1].Down() {
		w.phase = PhaseGameOver
		w.message = fmt.Sprintf("Game Over - P1: %d, P2: %d", w.players[0].Score, w.players[1].Score)
		w.emit(Event{Kind: EventGameOver})
	}
}

// Accessors for render and input adapters. Callers must not mutate the
// returned entities.

// Config returns the active tuning.
func (w *World) Config() config.BrawlerConfig { return w.cfg }

// Player returns the player in seat 1 or 2.
func (w *World) Player(seat int) *Player {
	if seat == 2 {
		return w.players[1]
	}
	return w.players[0]
}

// Players returns both players in seat order.
func (w *World) Players() [2]*Player { return w.players }

// Monsters returns the live monsters.
func (w *World) Monsters() []*Monster { return w.monsters }

// Boss returns the active boss, or nil.
func (w *World) Boss() *Boss { return w.boss }

// Phase returns the current phase.
func (w *World) Phase() Phase { return w.phase }

// Paused reports whether play is paused.
func (w *World) Paused() bool { return w.paused }

// Stage returns the current progression stage.
func (w *World) Stage() Stage { return w.stage }

// Level returns the current level, starting at 1.
func (w *World) Level() int { return w.level }

// Frame returns the number of simulated frames since play began.
func (w *World) Frame() int { return w.frame }

// TransitionLeft returns the frames remaining in a level transition.
func (w *World) TransitionLeft() int { return w.transition }

// Message returns the current announcement line.
func (w *World) Message() string { return w.message }

// TeamScore returns the sum of both players' scores.
func (w *World) TeamScore() int {
	return w.players[0].Score + w.players[1].Score
}

// PlayerStatus is the per-player part of Status.
type PlayerStatus struct {
	Name      string
	HP        int
	MaxHP     int
	HPPercent float64
	Score     int
	Down      bool
}

// Status is everything a HUD needs for one frame.
type Status struct {
	Players     [2]PlayerStatus
	Level       int
	Message     string
	BossWarning bool // a boss is on the field or about to be
	BossName    string
	BossHP      int
	BossMaxHP   int
	Phase       Phase
	Stage       Stage
	Paused      bool
	Overlay     string // transition banner, empty outside transitions
}

// Status reports the UI view of the world.
func (w *World) Status() Status {
	st := Status{
		Level:   w.level,
		Message: w.message,
		Phase:   w.phase,
		Stage:   w.stage,
		Paused:  w.paused,
	}
	for i, p := range w.players {
		st.Players[i] = PlayerStatus{
			Name:      p.Name(),
			HP:        p.Health,
			MaxHP:     p.MaxHealth,
			HPPercent: p.HealthPercent(),
			Score:     p.Score,
			Down:      p.Down(),
		}
	}
	if w.boss != nil {
		st.BossWarning = true
		st.BossName = w.boss.Title
		st.BossHP = w.boss.Health
		st.BossMaxHP = w.boss.MaxHealth
	}
	if w.stage == StageTransition {
		if _, ok := w.bossForLevel(w.level); ok {
			st.Overlay = "BOSS APPROACHING!"
			st.BossWarning = true
		} else {
			st.Overlay = fmt.Sprintf("LEVEL %d", w.level)
		}
	}
	return st
}
