package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

var presetHints = map[DifficultyPreset]string{
	DifficultyEasy:   "More health, softer bites, slower spawns",
	DifficultyNormal: "Tuning as configured",
	DifficultyHard:   "Less health, harder bites, faster spawns",
}

// Hint is a one-line description of the preset for menus and help.
func (p DifficultyPreset) Hint() string {
	return presetHints[p]
}

// ParsePreset converts a user-supplied name into a preset.
// An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyBrawlerPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded tuning untouched.
func ApplyBrawlerPreset(cfg *BrawlerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = cfg.Player.Health * 3 / 2
		cfg.Monsters.MeleeDamage = max(cfg.Monsters.MeleeDamage/2, 1)
		cfg.Spawn.BaseInterval += 20
		cfg.Spawn.MinInterval += 15
	case DifficultyHard:
		cfg.Player.Health = max(cfg.Player.Health*3/4, 1)
		cfg.Monsters.MeleeDamage = cfg.Monsters.MeleeDamage * 3 / 2
		cfg.Spawn.BaseInterval = max(cfg.Spawn.BaseInterval-15, 1)
		cfg.Spawn.MinInterval = max(cfg.Spawn.MinInterval-10, 1)
	}
}

// CheckStartup validates the --difficulty and --config flags before a
// front end starts. An explicit config path must exist and parse.
func CheckStartup(difficulty, configPath string) (DifficultyPreset, error) {
	preset, err := ParsePreset(difficulty)
	if err != nil {
		return preset, err
	}
	if configPath != "" {
		if _, err := LoadBrawlerFile(configPath); err != nil {
			return preset, fmt.Errorf("config %s: %w", configPath, err)
		}
	}
	return preset, nil
}
