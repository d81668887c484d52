package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBrawler loads brawler configuration.
// Search order: customPath -> ~/.arcade/configs/brawler.yaml -> ./configs/brawler.yaml -> embedded default
func LoadBrawler(customPath string) (BrawlerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadBrawlerFile(customPath)
		if err != nil {
			return DefaultBrawlerConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("brawler.yaml"); userCfgPath != "" {
		if cfg, err := LoadBrawlerFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadBrawlerFile(filepath.Join("configs", "brawler.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseBrawler(defaultBrawlerYAML)
	if err != nil {
		return DefaultBrawlerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadBrawlerFile reads and validates a single brawler config file.
func LoadBrawlerFile(path string) (BrawlerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BrawlerConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseBrawler(data)
	if err != nil {
		return BrawlerConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseBrawler decodes YAML over the built-in defaults, so a file only needs
// the keys it changes. The result is validated.
func ParseBrawler(data []byte) (BrawlerConfig, error) {
	cfg := DefaultBrawlerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BrawlerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BrawlerConfig{}, err
	}
	return cfg, nil
}

// ResolveBrawlerPath returns the file LoadBrawler would read, or "" when it
// would fall back to the embedded defaults.
func ResolveBrawlerPath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{userConfigPath("brawler.yaml"), filepath.Join("configs", "brawler.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
