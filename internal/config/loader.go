package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFifteen loads fifteen puzzle configuration.
// Search order: customPath -> ~/.arcade/configs/fifteen.yaml -> ./configs/fifteen.yaml -> embedded default
func LoadFifteen(customPath string) (FifteenConfig, error) {
	var cfg FifteenConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fifteen.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/fifteen.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFifteenYAML, &cfg); err != nil {
		return DefaultFifteenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadLaser loads laser demo configuration.
// Search order: customPath -> ~/.arcade/configs/laser.yaml -> ./configs/laser.yaml -> embedded default
func LoadLaser(customPath string) (LaserConfig, error) {
	var cfg LaserConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("laser.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/laser.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLaserYAML, &cfg); err != nil {
		return DefaultLaserConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFifteenPreset modifies the config based on a difficulty preset.
// Presets change the board geometry, so they also define what a "solve"
// is worth on the scoreboard.
func ApplyFifteenPreset(cfg *FifteenConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Size = 3
		cfg.Animation.Speed = 360
	case DifficultyNormal:
		cfg.Board.Size = 4
		cfg.Animation.Speed = 300
	case DifficultyHard:
		cfg.Board.Size = 5
		cfg.Animation.Speed = 240
	case DifficultyFixed:
		// Keep the loaded values.
	}
}

// ApplyLaserPreset modifies the config based on a difficulty preset.
func ApplyLaserPreset(cfg *LaserConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
