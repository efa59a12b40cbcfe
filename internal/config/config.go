// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "fmt"

// FifteenConfig contains all configuration for the fifteen puzzle.
type FifteenConfig struct {
	Board      FifteenBoard     `yaml:"board"`
	Animation  FifteenAnimation `yaml:"animation"`
	Shuffle    FifteenShuffle   `yaml:"shuffle"`
	Backdrops  FifteenBackdrops `yaml:"backdrops"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FifteenBoard defines the grid geometry.
type FifteenBoard struct {
	Size       int `yaml:"size"`        // Cells per side; 4 is the classic fifteen
	CellWidth  int `yaml:"cell_width"`  // Tile width in screen cells
	CellHeight int `yaml:"cell_height"` // Tile height in screen cells
}

// FifteenAnimation defines tile slide timing.
type FifteenAnimation struct {
	// Speed is in offset units per second; a tile commits after
	// covering 100 units (one full cell).
	Speed float64 `yaml:"speed"`
}

// FifteenShuffle defines how new puzzles are generated.
type FifteenShuffle struct {
	// SolvableOnly restricts shuffles to even permutations. The raw
	// shuffle can deal positions that no sequence of slides solves;
	// turning this off restores that behavior.
	SolvableOnly bool `yaml:"solvable_only"`
}

// FifteenBackdrops points at extra background art.
type FifteenBackdrops struct {
	Dir string `yaml:"dir"` // Extra *.txt art directory, empty for embedded only
}

// Validate reports the first structurally unusable value.
func (c FifteenConfig) Validate() error {
	if c.Board.Size <= 1 {
		return fmt.Errorf("config: board size must be at least 2, got %d", c.Board.Size)
	}
	if c.Board.CellWidth < 3 || c.Board.CellHeight < 1 {
		return fmt.Errorf("config: cell size %dx%d is too small to draw a tile",
			c.Board.CellWidth, c.Board.CellHeight)
	}
	if c.Animation.Speed <= 0 {
		return fmt.Errorf("config: animation speed must be positive, got %v", c.Animation.Speed)
	}
	return nil
}

// LaserConfig contains all configuration for the laser demo.
type LaserConfig struct {
	Beam       LaserBeam        `yaml:"beam"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LaserBeam defines the beam's motion.
type LaserBeam struct {
	Velocity float64 `yaml:"velocity"` // Base speed in cells per second
	Trail    int     `yaml:"trail"`    // Fading trail length in cells
}

// Validate reports the first structurally unusable value.
func (c LaserConfig) Validate() error {
	if c.Beam.Velocity <= 0 {
		return fmt.Errorf("config: beam velocity must be positive, got %v", c.Beam.Velocity)
	}
	if c.Beam.Trail < 0 {
		return fmt.Errorf("config: beam trail must not be negative, got %d", c.Beam.Trail)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
