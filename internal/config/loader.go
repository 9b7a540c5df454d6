package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTypefall loads the typefall configuration.
// Search order: customPath -> ~/.typefall/configs/typefall.yaml ->
// ./configs/typefall.yaml -> embedded default.
func LoadTypefall(customPath string) (TypefallConfig, error) {
	var cfg TypefallConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("typefall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/typefall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTypefallYAML, &cfg); err != nil {
		return DefaultTypefallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".typefall", "configs", filename)
}

// sanitize clamps config values to playable ranges so a hand-edited file
// cannot produce a degenerate board or a divide-by-zero tick interval.
func sanitize(cfg TypefallConfig) TypefallConfig {
	def := DefaultTypefallConfig()

	if cfg.Board.Width < 4 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height < 6 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Board.SpawnBuffer < 2 {
		cfg.Board.SpawnBuffer = def.Board.SpawnBuffer
	}
	if cfg.Gravity.TicksPerCell < 1 {
		cfg.Gravity.TicksPerCell = def.Gravity.TicksPerCell
	}
	if cfg.Gravity.MinTicksPerCell < 1 {
		cfg.Gravity.MinTicksPerCell = def.Gravity.MinTicksPerCell
	}
	if cfg.Gravity.SpeedupPerLevel < 0 {
		cfg.Gravity.SpeedupPerLevel = def.Gravity.SpeedupPerLevel
	}
	if cfg.Gravity.LinesPerLevel < 1 {
		cfg.Gravity.LinesPerLevel = def.Gravity.LinesPerLevel
	}
	if cfg.Words.MinLength < 1 {
		cfg.Words.MinLength = def.Words.MinLength
	}
	if cfg.Words.MaxLength < cfg.Words.MinLength {
		cfg.Words.MaxLength = cfg.Words.MinLength
	}
	return cfg
}
