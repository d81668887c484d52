package brawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// newTestWorld returns a world that is already playing with default tuning.
func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(config.DefaultBrawlerConfig(), 1)
	w.Start()
	w.DrainEvents()
	return w
}

func addMonster(w *World, kind MonsterKind, x, y float64) *Monster {
	m := newMonster(kind, x, y, w.cfg.Monsters.Size, 0, w.tables.monsters[kind])
	w.monsters = append(w.monsters, m)
	return m
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestNewWorldStartsOnTitle(t *testing.T) {
	w := NewWorld(config.DefaultBrawlerConfig(), 7)

	assert.Equal(t, PhaseStart, w.Phase())
	assert.Equal(t, 1, w.Level())
	assert.Empty(t, w.Monsters())
	assert.Nil(t, w.Boss())

	w.Step(core.KeySet{core.KeyD: true})
	assert.Equal(t, 0, w.Frame(), "title screen must not simulate")
}

func TestStartCreatesPlayers(t *testing.T) {
	w := NewWorld(config.DefaultBrawlerConfig(), 7)
	w.Start()

	require.Equal(t, PhasePlaying, w.Phase())
	assert.Equal(t, "Fight the monsters!", w.Message())
	assert.Equal(t, []EventKind{EventLevelStarted}, eventKinds(w.DrainEvents()))

	p1, p2 := w.Player(1), w.Player(2)
	assert.Equal(t, 100.0, p1.X)
	assert.Equal(t, 300.0, p1.Y)
	assert.Equal(t, core.ColorGreen, p1.Color)
	assert.Equal(t, P1Controls, p1.Controls)
	assert.Equal(t, 700.0, p2.X)
	assert.Equal(t, 300.0, p2.Y)
	assert.Equal(t, core.ColorRed, p2.Color)
	assert.Equal(t, P2Controls, p2.Controls)

	for _, p := range w.Players() {
		assert.Equal(t, 100, p.Health)
		assert.Equal(t, 100, p.MaxHealth)
		assert.Equal(t, 0, p.Score)
		assert.Equal(t, 1, p.Facing)
	}
}

func TestStartIgnoredWhilePlaying(t *testing.T) {
	w := newTestWorld(t)
	w.Player(1).Score = 40
	w.Start()
	assert.Equal(t, 40, w.Player(1).Score)
}

func TestRestartReinitializes(t *testing.T) {
	w := newTestWorld(t)
	addMonster(w, MonsterBug, 10, 10)
	w.level = 3
	w.stage = StageBoss
	w.boss = newBoss(BossSkeleton, 10, 10, w.tables.bosses[BossSkeleton])
	w.Player(1).Score = 99
	w.Player(2).Health = 0
	w.phase = PhaseGameOver

	w.Restart()

	assert.Equal(t, PhasePlaying, w.Phase())
	assert.Equal(t, StageNormal, w.Stage())
	assert.Equal(t, 1, w.Level())
	assert.Empty(t, w.Monsters())
	assert.Nil(t, w.Boss())
	assert.Equal(t, 0, w.Player(1).Score)
	assert.Equal(t, 100, w.Player(2).Health)
	assert.Equal(t, "Fight the monsters!", w.Message())
}

func TestPauseStopsSimulation(t *testing.T) {
	w := newTestWorld(t)
	w.TogglePause()
	require.True(t, w.Paused())

	w.Step(core.KeySet{core.KeyD: true})
	assert.Equal(t, 0, w.Frame())
	assert.Equal(t, 100.0, w.Player(1).X)

	w.TogglePause()
	w.Step(core.KeySet{core.KeyD: true})
	assert.Equal(t, 1, w.Frame())
	assert.Equal(t, 103.0, w.Player(1).X)
}

func TestTogglePauseOnlyWhilePlaying(t *testing.T) {
	w := NewWorld(config.DefaultBrawlerConfig(), 1)
	w.TogglePause()
	assert.False(t, w.Paused())
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() *World {
		w := newTestWorld(t)
		for i := 0; i < 600; i++ {
			keys := core.KeySet{}
			if i%3 == 0 {
				keys[core.KeySpace] = true
			}
			if i%50 < 25 {
				keys[core.KeyArrowLeft] = true
			}
			w.Step(keys)
		}
		return w
	}

	a, b := run(), run()
	require.Equal(t, len(a.Monsters()), len(b.Monsters()))
	for i := range a.Monsters() {
		assert.Equal(t, *a.Monsters()[i], *b.Monsters()[i])
	}
	assert.Equal(t, a.Player(1).Score, b.Player(1).Score)
	assert.Equal(t, a.Player(2).Health, b.Player(2).Health)
}

func TestStatus(t *testing.T) {
	w := newTestWorld(t)
	w.Player(1).Health = 40
	w.Player(2).Score = 12

	st := w.Status()
	assert.Equal(t, "P1", st.Players[0].Name)
	assert.Equal(t, 40, st.Players[0].HP)
	assert.InDelta(t, 40.0, st.Players[0].HPPercent, 1e-9)
	assert.Equal(t, 12, st.Players[1].Score)
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, PhasePlaying, st.Phase)
	assert.Empty(t, st.Overlay)
	assert.False(t, st.BossWarning)
}

func TestStatusOverlay(t *testing.T) {
	w := newTestWorld(t)

	w.level = 2
	w.enterTransition()
	st := w.Status()
	assert.Equal(t, "BOSS APPROACHING!", st.Overlay)
	assert.True(t, st.BossWarning)

	cfg := config.DefaultBrawlerConfig()
	cfg.Progression.BossLevels = []int{4}
	w.SetConfig(cfg)
	w.level = 3
	w.enterTransition()
	assert.Equal(t, "LEVEL 3", w.Status().Overlay)
}

func TestStatusBoss(t *testing.T) {
	w := newTestWorld(t)
	w.spawnBoss(BossOctopus)

	st := w.Status()
	assert.True(t, st.BossWarning)
	assert.Equal(t, "Octopus", st.BossName)
	assert.Equal(t, 400, st.BossHP)
	assert.Equal(t, 400, st.BossMaxHP)
	assert.Equal(t, "Boss Battle: Octopus!", st.Message)
}

func TestSetConfigKeepsExistingEntities(t *testing.T) {
	w := newTestWorld(t)
	old := addMonster(w, MonsterZombie, 400, 100)

	cfg := config.DefaultBrawlerConfig()
	for i := range cfg.Monsters.Kinds {
		cfg.Monsters.Kinds[i].Health = 5
	}
	w.SetConfig(cfg)

	assert.Equal(t, 40, old.Health)
	fresh := addMonster(w, MonsterZombie, 400, 100)
	assert.Equal(t, 5, fresh.Health)
}

func TestDrainEvents(t *testing.T) {
	w := newTestWorld(t)
	assert.Nil(t, w.DrainEvents())

	for i := 0; i < maxPendingEvents+10; i++ {
		w.emit(Event{Kind: EventMonsterKilled, Seat: 1})
	}
	events := w.DrainEvents()
	assert.Len(t, events, maxPendingEvents)
	assert.Nil(t, w.DrainEvents())
}
