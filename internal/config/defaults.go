package config

import (
	_ "embed"
)

//go:embed defaults/typefall.yaml
var defaultTypefallYAML []byte

// DefaultTypefallConfig returns the default typefall configuration.
func DefaultTypefallConfig() TypefallConfig {
	return TypefallConfig{
		Board: BoardConfig{
			Width:       10,
			Height:      18,
			SpawnBuffer: 2,
		},
		Gravity: GravityConfig{
			TicksPerCell:    48,
			MinTicksPerCell: 6,
			SpeedupPerLevel: 4,
			LinesPerLevel:   10,
		},
		Typing: TypingConfig{
			CaseSensitive: false,
		},
		Words: WordsConfig{
			Pack:      "",
			MinLength: 3,
			MaxLength: 8,
		},
		Difficulty: DifficultyConfig{
			Preset:      DifficultyNormal,
			Progression: true,
		},
	}
}
