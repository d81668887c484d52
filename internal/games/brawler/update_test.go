package brawler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name         string
		keys         core.KeySet
		wantX, wantY float64
		wantFacing   int
	}{
		{"idle", nil, 100, 300, 1},
		{"up", core.KeySet{core.KeyW: true}, 100, 297, 1},
		{"down", core.KeySet{core.KeyS: true}, 100, 303, 1},
		{"left", core.KeySet{core.KeyA: true}, 97, 300, -1},
		{"right", core.KeySet{core.KeyD: true}, 103, 300, 1},
		{"diagonal", core.KeySet{core.KeyW: true, core.KeyA: true}, 97, 297, -1},
		{"other seat keys", core.KeySet{core.KeyArrowLeft: true}, 100, 300, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			p := w.Player(1)
			w.updatePlayer(p, tt.keys)
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, tt.wantY, p.Y)
			assert.Equal(t, tt.wantFacing, p.Facing)
		})
	}
}

func TestPlayerMovementBounded(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player(2)

	p.X, p.Y = 0, 0
	w.updatePlayer(p, core.KeySet{core.KeyArrowUp: true, core.KeyArrowLeft: true})
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)

	p.X, p.Y = 800-24, 600-32
	w.updatePlayer(p, core.KeySet{core.KeyArrowDown: true, core.KeyArrowRight: true})
	assert.Equal(t, 776.0, p.X)
	assert.Equal(t, 568.0, p.Y)
}

func TestPlayerAttackCooldown(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player(1)
	m := addMonster(w, MonsterZombie, 100, 300)
	m.Health = 1000
	m.MaxHealth = 1000
	attack := core.KeySet{core.KeySpace: true}

	w.updatePlayer(p, attack)
	assert.Equal(t, 975, m.Health)
	assert.Equal(t, 20, p.AttackCooldown)
	assert.Equal(t, 12, p.AttackFlash)
	assert.True(t, p.Attacking())

	// Holding attack does nothing until the cooldown runs out.
	for i := 0; i < 19; i++ {
		w.updatePlayer(p, attack)
	}
	assert.Equal(t, 975, m.Health)
	assert.False(t, p.Attacking())

	w.updatePlayer(p, attack)
	assert.Equal(t, 950, m.Health)
}

func TestMonsterChasesNearestPlayer(t *testing.T) {
	w := newTestWorld(t)

	// Equidistant from both players: seat 1 wins the tie.
	tie := addMonster(w, MonsterSkeleton, 400, 300)
	// Closer to P2.
	right := addMonster(w, MonsterBug, 600, 300)
	// Standing on P1 exactly: no movement.
	onTop := addMonster(w, MonsterZombie, 100, 300)
	onTop.Cooldown = 10

	w.updateMonsters()

	assert.InDelta(t, 399.0, tie.X, 1e-9)
	assert.InDelta(t, 300.0, tie.Y, 1e-9)
	assert.InDelta(t, 602.0, right.X, 1e-9)
	assert.Equal(t, 100.0, onTop.X)
	assert.Equal(t, 300.0, onTop.Y)
}

func TestMonsterBite(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.Player(1)
	m := addMonster(w, MonsterSkeleton, 110, 300)

	w.updateMonsters()
	assert.Equal(t, 90, p1.Health)
	assert.Equal(t, 120, m.Cooldown)
	assert.Equal(t, 60, p1.Invulnerable)

	// Cooldown blocks the next bite even once invulnerability is gone.
	p1.Invulnerable = 0
	w.updateMonsters()
	assert.Equal(t, 90, p1.Health)
	assert.Equal(t, 119, m.Cooldown)
}

func TestMonsterBitesRespectInvulnerability(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.Player(1)
	for i := 0; i < 5; i++ {
		addMonster(w, MonsterBat, 105+float64(i), 300)
	}

	w.updateMonsters()
	assert.Equal(t, 90, p1.Health, "only the first bite lands inside the window")
	for _, m := range w.Monsters() {
		assert.Equal(t, 120, m.Cooldown)
	}
}

func TestMonsterClampedToArena(t *testing.T) {
	w := newTestWorld(t)
	corner := addMonster(w, MonsterBug, 800, 600)
	origin := addMonster(w, MonsterBug, -5, -5)

	w.updateMonsters()

	assert.LessOrEqual(t, corner.X, 780.0)
	assert.LessOrEqual(t, corner.Y, 580.0)
	assert.GreaterOrEqual(t, origin.X, 0.0)
	assert.GreaterOrEqual(t, origin.Y, 0.0)
}

func TestBossPatterns(t *testing.T) {
	tests := []struct {
		kind  BossKind
		count int
		proj  ProjectileKind
		speed float64
		dmg   int
	}{
		{BossPig, 1, ProjectileSpit, 4, 20},
		{BossSkeleton, 3, ProjectileBomb, 3, 25},
		{BossOctopus, 8, ProjectileSword, 2, 15},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w := newTestWorld(t)
			w.spawnBoss(tt.kind)
			b := w.Boss()
			require.NotNil(t, b)
			assert.Equal(t, 360.0, b.X)
			assert.Equal(t, 100.0, b.Y)

			for i := 1; i < b.stats.period; i++ {
				w.updateBoss()
			}
			assert.Empty(t, b.Projectiles, "no shot before the period elapses")

			w.updateBoss()
			require.Len(t, b.Projectiles, tt.count)
			cx, cy := b.Center()
			for _, pr := range b.Projectiles {
				assert.Equal(t, tt.proj, pr.Kind)
				assert.Equal(t, tt.dmg, pr.Damage)
				assert.InDelta(t, tt.speed, math.Hypot(pr.VX, pr.VY), 1e-9)
				// Fired from the center and moved once.
				assert.InDelta(t, cx+pr.VX, pr.X, 1e-9)
				assert.InDelta(t, cy+pr.VY, pr.Y, 1e-9)
			}
		})
	}
}

func TestSkeletonArcAngles(t *testing.T) {
	w := newTestWorld(t)
	w.spawnBoss(BossSkeleton)
	b := w.Boss()
	w.fire(b)

	require.Len(t, b.Projectiles, 3)
	for i, pr := range b.Projectiles {
		want := -math.Pi/4 + float64(i)*math.Pi/8
		assert.InDelta(t, want, math.Atan2(pr.VY, pr.VX), 1e-9)
	}
}

func TestPigAimsAtNearestPlayer(t *testing.T) {
	w := newTestWorld(t)
	w.spawnBoss(BossPig)
	b := w.Boss()
	p2 := w.Player(2)
	p2.X, p2.Y = b.X+100, b.Y

	w.fire(b)
	require.Len(t, b.Projectiles, 1)
	assert.InDelta(t, 4.0, b.Projectiles[0].VX, 1e-9)
	assert.InDelta(t, 0.0, b.Projectiles[0].VY, 1e-9)
}

func TestProjectileHitsOnce(t *testing.T) {
	w := newTestWorld(t)
	w.spawnBoss(BossPig)
	b := w.Boss()
	p1, p2 := w.Player(1), w.Player(2)
	// Both players stacked: only the first one checked takes the hit.
	p2.X, p2.Y = p1.X, p1.Y
	p1.Invulnerable = 40

	cx, cy := p1.Center()
	b.Projectiles = []Projectile{{Kind: ProjectileSpit, X: cx - 2, Y: cy, VX: 1, Damage: 20}}

	w.updateProjectiles(b)
	assert.Empty(t, b.Projectiles)
	assert.Equal(t, 80, p1.Health)
	assert.Equal(t, 100, p2.Health)
	assert.Equal(t, 40, p1.Invulnerable)

	w.updateProjectiles(b)
	assert.Equal(t, 80, p1.Health)
}

func TestProjectileLeavesArena(t *testing.T) {
	w := newTestWorld(t)
	w.spawnBoss(BossOctopus)
	b := w.Boss()
	b.Projectiles = []Projectile{
		{Kind: ProjectileSword, X: 799, Y: 10, VX: 2, Damage: 15},
		{Kind: ProjectileSword, X: 10, Y: 1, VY: -2, Damage: 15},
		{Kind: ProjectileSword, X: 400, Y: 10, VX: 2, Damage: 15},
	}

	w.updateProjectiles(b)
	require.Len(t, b.Projectiles, 1)
	assert.Equal(t, 402.0, b.Projectiles[0].X)
	assert.Equal(t, 100, w.Player(1).Health)
	assert.Equal(t, 100, w.Player(2).Health)
}

func TestPlayerDownedEvent(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.Player(1)
	p1.Health = 10

	w.damagePlayerProjectile(p1, 20)
	w.damagePlayerProjectile(p1, 20)

	events := w.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventPlayerDowned, events[0].Kind)
	assert.Equal(t, 1, events[0].Seat)
}
