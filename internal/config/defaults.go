package config

import (
	_ "embed"
)

//go:embed defaults/fifteen.yaml
var defaultFifteenYAML []byte

//go:embed defaults/laser.yaml
var defaultLaserYAML []byte

// DefaultFifteenConfig returns the default fifteen puzzle configuration.
func DefaultFifteenConfig() FifteenConfig {
	return FifteenConfig{
		Board: FifteenBoard{
			Size:       4,
			CellWidth:  6,
			CellHeight: 3,
		},
		Animation: FifteenAnimation{
			Speed: 300,
		},
		Shuffle: FifteenShuffle{
			SolvableOnly: true,
		},
		Backdrops: FifteenBackdrops{
			Dir: "",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}

// DefaultLaserConfig returns the default laser demo configuration.
func DefaultLaserConfig() LaserConfig {
	return LaserConfig{
		Beam: LaserBeam{
			Velocity: 40,
			Trail:    6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}
