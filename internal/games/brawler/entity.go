package brawler

import (
	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// MonsterKind identifies a monster type. Values index the resolved stat table.
type MonsterKind int

const (
	MonsterSkeleton MonsterKind = iota
	MonsterZombie
	MonsterBug
	MonsterBat
	monsterKindCount
)

// String returns the config name of the kind.
func (k MonsterKind) String() string {
	if k < 0 || k >= monsterKindCount {
		return "unknown"
	}
	return config.MonsterNames[k]
}

// BossKind identifies a boss type. Values index the resolved boss table.
type BossKind int

const (
	BossPig BossKind = iota
	BossSkeleton
	BossOctopus
	bossKindCount
)

// String returns the config name of the kind.
func (k BossKind) String() string {
	if k < 0 || k >= bossKindCount {
		return "unknown"
	}
	return config.BossNames[k]
}

// ProjectileKind is cosmetic; damage is carried on the projectile itself.
type ProjectileKind int

const (
	ProjectileSpit ProjectileKind = iota
	ProjectileBomb
	ProjectileSword
)

// Controls maps a player's five actions to logical keys.
type Controls struct {
	Up, Down, Left, Right, Attack core.Key
}

// Default bindings for the two seats.
var (
	P1Controls = Controls{Up: core.KeyW, Down: core.KeyS, Left: core.KeyA, Right: core.KeyD, Attack: core.KeySpace}
	P2Controls = Controls{Up: core.KeyArrowUp, Down: core.KeyArrowDown, Left: core.KeyArrowLeft, Right: core.KeyArrowRight, Attack: core.KeyEnter}
)

// Player is one of the two co-op heroes. Position is the top-left corner.
type Player struct {
	Seat      int // 1 or 2
	X, Y      float64
	W, H      float64
	Color     core.Color
	Health    int
	MaxHealth int
	Speed     float64
	Score     int
	Controls  Controls
	Facing    int // 1 right, -1 left

	AttackCooldown int // frames until the next swing is allowed
	Invulnerable   int // frames of melee immunity left
	AttackFlash    int // frames the blade stays drawn

	invulnFrames int
}

func newPlayer(seat int, x, y float64, color core.Color, controls Controls, pc config.PlayerConfig) *Player {
	return &Player{
		Seat:         seat,
		X:            x,
		Y:            y,
		W:            pc.Width,
		H:            pc.Height,
		Color:        color,
		Health:       pc.Health,
		MaxHealth:    pc.Health,
		Speed:        pc.Speed,
		Controls:     controls,
		Facing:       1,
		invulnFrames: pc.Invulnerability,
	}
}

// Name returns the HUD label for the player.
func (p *Player) Name() string {
	if p.Seat == 2 {
		return "P2"
	}
	return "P1"
}

// Center returns the middle of the player's box.
func (p *Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// Down reports whether the player has no health left.
func (p *Player) Down() bool {
	return p.Health <= 0
}

// Attacking reports whether the swing flash is visible.
func (p *Player) Attacking() bool {
	return p.AttackFlash > 0
}

// HealthPercent returns health as 0..100 of max.
func (p *Player) HealthPercent() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth) * 100
}

// TakeMeleeDamage applies contact damage unless the player is invulnerable.
// A landed hit starts the invulnerability window. Reports whether it landed.
func (p *Player) TakeMeleeDamage(d int) bool {
	if p.Invulnerable > 0 {
		return false
	}
	p.Health -= d
	p.Invulnerable = p.invulnFrames
	if p.Health < 0 {
		p.Health = 0
	}
	return true
}

// TakeProjectileDamage applies boss projectile damage. Invulnerability is
// neither checked nor granted.
func (p *Player) TakeProjectileDamage(d int) {
	p.Health -= d
	if p.Health < 0 {
		p.Health = 0
	}
}

// addScore credits points; negative awards are ignored so scores never drop.
func (p *Player) addScore(n int) {
	if n > 0 {
		p.Score += n
	}
}

// monsterStats is one resolved row of the monster table.
type monsterStats struct {
	health int
	speed  float64
	score  int
}

// Monster is a regular enemy that chases the nearer player.
type Monster struct {
	Kind       MonsterKind
	X, Y       float64
	Size       float64
	Health     int
	MaxHealth  int
	Speed      float64
	ScoreValue int
	Direction  float64 // radians, decorative
	Cooldown   int
}

func newMonster(kind MonsterKind, x, y, size, direction float64, st monsterStats) *Monster {
	return &Monster{
		Kind:       kind,
		X:          x,
		Y:          y,
		Size:       size,
		Health:     st.health,
		MaxHealth:  st.health,
		Speed:      st.speed,
		ScoreValue: st.score,
		Direction:  direction,
	}
}

// TakeDamage subtracts d from health. Health may go negative; removal is
// handled by the world.
func (m *Monster) TakeDamage(d int) {
	m.Health -= d
}

// Dead reports whether the monster should be removed.
func (m *Monster) Dead() bool {
	return m.Health <= 0
}

// Damaged reports whether the monster has lost any health.
func (m *Monster) Damaged() bool {
	return m.Health < m.MaxHealth
}

// bossStats is one resolved row of the boss table.
type bossStats struct {
	title   string
	health  int
	w, h    float64
	period  int
	pattern string
	speed   float64
	damage  int
}

// Projectile is a boss shot. Position is a point.
type Projectile struct {
	Kind   ProjectileKind
	X, Y   float64
	VX, VY float64
	Damage int
}

// Boss is the single large enemy of a boss level. It does not move.
type Boss struct {
	Kind        BossKind
	Title       string
	X, Y        float64
	W, H        float64
	Health      int
	MaxHealth   int
	Dead        bool
	AttackTimer int
	Projectiles []Projectile

	stats bossStats
}

func newBoss(kind BossKind, x, y float64, st bossStats) *Boss {
	return &Boss{
		Kind:      kind,
		Title:     st.title,
		X:         x,
		Y:         y,
		W:         st.w,
		H:         st.h,
		Health:    st.health,
		MaxHealth: st.health,
		stats:     st,
	}
}

// Center returns the middle of the boss box, where projectiles originate.
func (b *Boss) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// TakeDamage subtracts d and marks the boss dead at zero or below.
// Reports whether this hit was the killing blow.
func (b *Boss) TakeDamage(d int) bool {
	if b.Dead {
		return false
	}
	b.Health -= d
	if b.Health <= 0 {
		b.Dead = true
		return true
	}
	return false
}

// tables holds the kind tables resolved from config once per world.
type tables struct {
	monsters [monsterKindCount]monsterStats
	bosses   [bossKindCount]bossStats
}

// resolveTables converts the named config rows into enum-indexed arrays.
// Missing rows fall back to the built-in defaults.
func resolveTables(cfg config.BrawlerConfig) tables {
	defaults := config.DefaultBrawlerConfig()
	var t tables
	for i, name := range config.MonsterNames {
		k, ok := cfg.Monsters.Kind(name)
		if !ok {
			k, _ = defaults.Monsters.Kind(name)
		}
		t.monsters[i] = monsterStats{health: k.Health, speed: k.Speed, score: k.Score}
	}
	for i, name := range config.BossNames {
		k, ok := cfg.Bosses.Kind(name)
		if !ok {
			k, _ = defaults.Bosses.Kind(name)
		}
		title := k.Title
		if title == "" {
			title = name
		}
		t.bosses[i] = bossStats{
			title:   title,
			health:  k.Health,
			w:       k.Width,
			h:       k.Height,
			period:  k.AttackPeriod,
			pattern: k.Pattern,
			speed:   k.ProjectileSpeed,
			damage:  k.Damage,
		}
	}
	return t
}
