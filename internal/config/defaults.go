package config

import (
	_ "embed"
)

//go:embed defaults/brawler.yaml
var defaultBrawlerYAML []byte

// DefaultBrawlerConfig returns the built-in brawler tuning.
func DefaultBrawlerConfig() BrawlerConfig {
	return BrawlerConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:           24,
			Height:          32,
			Health:          100,
			Speed:           3,
			AttackRange:     40,
			AttackDamage:    25,
			AttackCooldown:  20,
			AttackFlash:     12,
			Invulnerability: 60,
			HitRadius:       15,
		},
		Monsters: MonstersConfig{
			Size:        20,
			MeleeRange:  30,
			MeleeDamage: 10,
			Cooldown:    120,
			Kinds: []MonsterKind{
				{Name: "skeleton", Health: 30, Speed: 1.0, Score: 15},
				{Name: "zombie", Health: 40, Speed: 0.8, Score: 20},
				{Name: "bug", Health: 15, Speed: 2.0, Score: 10},
				{Name: "bat", Health: 20, Speed: 1.5, Score: 12},
			},
		},
		Bosses: BossesConfig{
			SpawnX:      40,
			SpawnY:      100,
			DefeatBonus: 100,
			Kinds: []BossKind{
				{Name: "pig", Title: "Pig", Health: 200, Width: 60, Height: 50, AttackPeriod: 180, Pattern: PatternAimed, ProjectileSpeed: 4, Damage: 20},
				{Name: "skeleton", Title: "Skeleton", Health: 300, Width: 50, Height: 60, AttackPeriod: 150, Pattern: PatternArc, ProjectileSpeed: 3, Damage: 25},
				{Name: "octopus", Title: "Octopus", Health: 400, Width: 80, Height: 70, AttackPeriod: 60, Pattern: PatternRadial, ProjectileSpeed: 2, Damage: 15},
			},
		},
		Spawn: SpawnConfig{
			BaseInterval: 60,
			PerLevel:     10,
			MinInterval:  30,
		},
		Progression: ProgressionConfig{
			BossLevels:       []int{2, 3, 4},
			TransitionFrames: 180,
			KillsPerLevel:    20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "brawler":
		return defaultBrawlerYAML
	default:
		return nil
	}
}
