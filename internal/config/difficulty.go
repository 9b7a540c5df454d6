package config

// ApplyDifficultyPreset adjusts gravity speed for a named preset.
// Presets scale the starting fall interval; "fixed" additionally freezes
// level progression.
func ApplyDifficultyPreset(cfg TypefallConfig, preset DifficultyPreset) TypefallConfig {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.TicksPerCell = cfg.Gravity.TicksPerCell * 3 / 2
	case DifficultyNormal:
		// Config values as-is
	case DifficultyHard:
		cfg.Gravity.TicksPerCell = cfg.Gravity.TicksPerCell / 2
		if cfg.Gravity.TicksPerCell < cfg.Gravity.MinTicksPerCell {
			cfg.Gravity.TicksPerCell = cfg.Gravity.MinTicksPerCell
		}
	case DifficultyFixed:
		cfg.Difficulty.Progression = false
	}
	cfg.Difficulty.Preset = preset
	return cfg
}

// ParseDifficultyPreset maps a CLI string to a preset, defaulting to the
// config's own preset for unknown values.
func ParseDifficultyPreset(s string, fallback DifficultyPreset) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return fallback
	}
}
