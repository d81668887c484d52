package brawler

import (
	"fmt"
	"math"
)

// spawnInterval is the frame gap between normal-level spawns.
func (w *World) spawnInterval() int {
	sc := w.cfg.Spawn
	return max(sc.BaseInterval-w.level*sc.PerLevel, sc.MinInterval)
}

// updateSpawning ticks the spawn timer on normal levels.
func (w *World) updateSpawning() {
	if w.stage != StageNormal {
		return
	}
	w.spawnTimer++
	if w.spawnTimer >= w.spawnInterval() {
		w.spawnMonster()
		w.spawnTimer = 0
	}
}

// spawnMonster adds a monster of random kind at a random point on a random
// arena edge.
func (w *World) spawnMonster() {
	kind := MonsterKind(w.rng.Intn(int(monsterKindCount)))
	aw, ah := w.cfg.Arena.Width, w.cfg.Arena.Height

	var x, y float64
	switch w.rng.Intn(4) {
	case 0: // top
		x, y = w.rng.Float64()*aw, 0
	case 1: // right
		x, y = aw, w.rng.Float64()*ah
	case 2: // bottom
		x, y = w.rng.Float64()*aw, ah
	default: // left
		x, y = 0, w.rng.Float64()*ah
	}

	direction := w.rng.Float64() * 2 * math.Pi
	w.monsters = append(w.monsters, newMonster(kind, x, y, w.cfg.Monsters.Size, direction, w.tables.monsters[kind]))
}

// bossForLevel returns the boss that guards level, if any.
func (w *World) bossForLevel(level int) (BossKind, bool) {
	for i, l := range w.cfg.Progression.BossLevels {
		if l == level && i < int(bossKindCount) {
			return BossKind(i), true
		}
	}
	return 0, false
}

// checkLevelCleared advances a normal level once enough monsters have died.
func (w *World) checkLevelCleared() {
	need := w.cfg.Progression.KillsPerLevel
	if w.stage != StageNormal || need <= 0 || w.kills < need {
		return
	}
	w.level++
	w.enterTransition()
}

// enterTransition starts the between-level countdown with an empty field.
func (w *World) enterTransition() {
	w.stage = StageTransition
	w.transition = w.cfg.Progression.TransitionFrames
	w.clearMonsters()
	w.spawnTimer = 0
	w.kills = 0
}

// updateTransition counts down and starts the next level when it ends.
func (w *World) updateTransition() {
	if w.stage != StageTransition {
		return
	}
	w.transition--
	if w.transition > 0 {
		return
	}
	w.transition = 0
	w.clearMonsters()

	if kind, ok := w.bossForLevel(w.level); ok {
		w.spawnBoss(kind)
		return
	}
	w.stage = StageNormal
	w.message = fmt.Sprintf("Level %d - Fight the monsters!", w.level)
	w.emit(Event{Kind: EventLevelStarted})
}

// spawnBoss places the level's boss and enters the boss stage.
func (w *World) spawnBoss(kind BossKind) {
	bc := w.cfg.Bosses
	w.boss = newBoss(kind, w.cfg.Arena.Width/2-bc.SpawnX, bc.SpawnY, w.tables.bosses[kind])
	w.stage = StageBoss
	w.message = fmt.Sprintf("Boss Battle: %s!", w.boss.Title)
	w.emit(Event{Kind: EventBossSpawned, Name: w.boss.Title})
}

// handleBossDeath removes a defeated boss, advances the level and either
// starts the next transition or ends the game in victory.
func (w *World) handleBossDeath() {
	if w.boss == nil || !w.boss.Dead {
		return
	}
	w.boss = nil
	w.level++

	if w.level > w.cfg.Progression.FinalLevel() {
		w.phase = PhaseVictory
		w.stage = StageNormal
		w.message = fmt.Sprintf("Victory! P1: %d, P2: %d", w.players[0].Score, w.players[1].Score)
		w.emit(Event{Kind: EventVictory})
		return
	}
	w.enterTransition()
}

func (w *World) clearMonsters() {
	w.monsters = nil
}
