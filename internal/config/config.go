// Package config provides YAML-based game configuration loading and
// difficulty management for the typefall platform.
package config

// TypefallConfig contains all configuration for the typefall game.
type TypefallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Typing     TypingConfig     `yaml:"typing"`
	Words      WordsConfig      `yaml:"words"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SpawnBuffer int `yaml:"spawn_buffer"` // Hidden rows above the visible area
}

// GravityConfig defines how fast pieces fall.
type GravityConfig struct {
	TicksPerCell    int `yaml:"ticks_per_cell"`    // Simulation ticks between gravity steps at level 1
	MinTicksPerCell int `yaml:"min_ticks_per_cell"`
	SpeedupPerLevel int `yaml:"speedup_per_level"` // Ticks shaved off per level
	LinesPerLevel   int `yaml:"lines_per_level"`
}

// TypingConfig defines the typing-gate behavior.
type TypingConfig struct {
	CaseSensitive bool `yaml:"case_sensitive"`
}

// WordsConfig defines where piece words come from.
type WordsConfig struct {
	Pack      string `yaml:"pack"` // Path to a word pack file; empty uses the embedded list
	MinLength int    `yaml:"min_length"`
	MaxLength int    `yaml:"max_length"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// DifficultyConfig tunes the starting speed and progression.
type DifficultyConfig struct {
	Preset      DifficultyPreset `yaml:"preset"`
	Progression bool             `yaml:"progression"` // false freezes gravity at its initial speed
}
