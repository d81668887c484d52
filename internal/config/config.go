// Package config provides YAML-based game configuration loading,
// difficulty presets and live reload for the brawler.
package config

import (
	"errors"
	"fmt"
)

// BrawlerConfig contains all tuning for the co-op brawler.
type BrawlerConfig struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Player      PlayerConfig      `yaml:"player"`
	Monsters    MonstersConfig    `yaml:"monsters"`
	Bosses      BossesConfig      `yaml:"bosses"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Progression ProgressionConfig `yaml:"progression"`
}

// ArenaConfig defines the world size in pixels.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player stats shared by both players.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	AttackRange     float64 `yaml:"attack_range"`
	AttackDamage    int     `yaml:"attack_damage"`
	AttackCooldown  int     `yaml:"attack_cooldown"`   // frames between swings
	AttackFlash     int     `yaml:"attack_flash"`      // frames the blade stays visible
	Invulnerability int     `yaml:"invulnerability"`   // frames after a melee hit
	HitRadius       float64 `yaml:"projectile_radius"` // projectile contact distance from player center
}

// MonstersConfig defines shared monster stats and the per-kind table.
type MonstersConfig struct {
	Size        float64       `yaml:"size"`
	MeleeRange  float64       `yaml:"melee_range"`
	MeleeDamage int           `yaml:"melee_damage"`
	Cooldown    int           `yaml:"cooldown"`
	Kinds       []MonsterKind `yaml:"kinds"`
}

// MonsterKind is one row of the monster table.
type MonsterKind struct {
	Name   string  `yaml:"name"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`
	Score  int     `yaml:"score"`
}

// BossesConfig defines the boss roster and where bosses appear.
type BossesConfig struct {
	SpawnX      float64    `yaml:"spawn_x"` // offset left of arena center
	SpawnY      float64    `yaml:"spawn_y"`
	DefeatBonus int        `yaml:"defeat_bonus"`
	Kinds       []BossKind `yaml:"kinds"`
}

// BossKind is one row of the boss table.
type BossKind struct {
	Name            string  `yaml:"name"`
	Title           string  `yaml:"title"`
	Health          int     `yaml:"health"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	AttackPeriod    int     `yaml:"attack_period"`
	Pattern         string  `yaml:"pattern"` // "aimed", "arc" or "radial"
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	Damage          int     `yaml:"damage"`
}

// SpawnConfig defines the normal-level spawn interval: max(base - level*per_level, min).
type SpawnConfig struct {
	BaseInterval int `yaml:"base_interval"`
	PerLevel     int `yaml:"per_level"`
	MinInterval  int `yaml:"min_interval"`
}

// ProgressionConfig defines level flow.
type ProgressionConfig struct {
	BossLevels       []int `yaml:"boss_levels"`
	TransitionFrames int   `yaml:"transition_frames"`
	KillsPerLevel    int   `yaml:"kills_per_level"` // 0 disables level clearing
}

// Pattern names accepted in BossKind.Pattern.
const (
	PatternAimed  = "aimed"
	PatternArc    = "arc"
	PatternRadial = "radial"
)

// Monster and boss names the world resolves tables against.
var (
	MonsterNames = []string{"skeleton", "zombie", "bug", "bat"}
	BossNames    = []string{"pig", "skeleton", "octopus"}
)

// Kind returns the monster table row with the given name.
func (c MonstersConfig) Kind(name string) (MonsterKind, bool) {
	for _, k := range c.Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return MonsterKind{}, false
}

// Kind returns the boss table row with the given name.
func (c BossesConfig) Kind(name string) (BossKind, bool) {
	for _, k := range c.Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return BossKind{}, false
}

// FinalLevel is the last boss level; clearing it wins the game.
func (p ProgressionConfig) FinalLevel() int {
	final := 0
	for _, l := range p.BossLevels {
		if l > final {
			final = l
		}
	}
	return final
}

// Validate reports the first problem that would make the config unplayable.
func (c BrawlerConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return errors.New("config: arena size must be positive")
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return errors.New("config: player size must be positive")
	}
	if c.Player.Width > c.Arena.Width || c.Player.Height > c.Arena.Height {
		return errors.New("config: player does not fit in the arena")
	}
	if c.Player.Health <= 0 {
		return errors.New("config: player health must be positive")
	}
	if c.Player.AttackDamage < 0 || c.Monsters.MeleeDamage < 0 {
		return errors.New("config: damage must not be negative")
	}
	if c.Monsters.Size <= 0 {
		return errors.New("config: monster size must be positive")
	}
	for _, name := range MonsterNames {
		k, ok := c.Monsters.Kind(name)
		if !ok {
			return fmt.Errorf("config: missing monster kind %q", name)
		}
		if k.Health <= 0 {
			return fmt.Errorf("config: monster %q needs positive health", name)
		}
	}
	for _, name := range BossNames {
		k, ok := c.Bosses.Kind(name)
		if !ok {
			return fmt.Errorf("config: missing boss kind %q", name)
		}
		if k.Health <= 0 || k.AttackPeriod <= 0 {
			return fmt.Errorf("config: boss %q needs positive health and attack period", name)
		}
		switch k.Pattern {
		case PatternAimed, PatternArc, PatternRadial:
		default:
			return fmt.Errorf("config: boss %q has unknown pattern %q", name, k.Pattern)
		}
	}
	if n := len(c.Progression.BossLevels); n == 0 || n > len(BossNames) {
		return fmt.Errorf("config: boss_levels needs 1 to %d entries", len(BossNames))
	}
	prev := 1
	for _, l := range c.Progression.BossLevels {
		if l <= prev {
			return errors.New("config: boss_levels must be increasing and above level 1")
		}
		prev = l
	}
	if c.Progression.TransitionFrames < 0 || c.Progression.KillsPerLevel < 0 {
		return errors.New("config: progression counters must not be negative")
	}
	if c.Spawn.MinInterval <= 0 {
		return errors.New("config: spawn min_interval must be positive")
	}
	return nil
}
