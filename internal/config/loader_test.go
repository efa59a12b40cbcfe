package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	var fifteen FifteenConfig
	if err := yaml.Unmarshal(defaultFifteenYAML, &fifteen); err != nil {
		t.Fatalf("embedded fifteen.yaml failed to parse: %v", err)
	}
	if err := fifteen.Validate(); err != nil {
		t.Errorf("embedded fifteen.yaml is invalid: %v", err)
	}
	if fifteen.Board.Size != 4 {
		t.Errorf("default board size = %d, expected 4", fifteen.Board.Size)
	}
	if !fifteen.Shuffle.SolvableOnly {
		t.Error("default shuffle should be solvable-only")
	}

	var laser LaserConfig
	if err := yaml.Unmarshal(defaultLaserYAML, &laser); err != nil {
		t.Fatalf("embedded laser.yaml failed to parse: %v", err)
	}
	if err := laser.Validate(); err != nil {
		t.Errorf("embedded laser.yaml is invalid: %v", err)
	}
	if laser.Beam.Velocity != 40 {
		t.Errorf("default beam velocity = %v, expected 40", laser.Beam.Velocity)
	}
}

func TestLoadFifteenCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifteen.yaml")
	data := `
board:
  size: 5
  cell_width: 4
  cell_height: 2
animation:
  speed: 250
shuffle:
  solvable_only: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFifteen(path)
	if err != nil {
		t.Fatalf("LoadFifteen() failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("board size = %d, expected 5", cfg.Board.Size)
	}
	if cfg.Animation.Speed != 250 {
		t.Errorf("animation speed = %v, expected 250", cfg.Animation.Speed)
	}
	if cfg.Shuffle.SolvableOnly {
		t.Error("solvable_only should be false as configured")
	}
}

func TestLoadFifteenRejectsInvalid(t *testing.T) {
	if _, err := LoadFifteen(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFifteen() with a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := `
board:
  size: 1
  cell_width: 6
  cell_height: 3
animation:
  speed: 300
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFifteen(path); err == nil {
		t.Error("LoadFifteen() should reject a 1x1 board")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultFifteenConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	cfg.Animation.Speed = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero animation speed should fail validation")
	}

	laser := DefaultLaserConfig()
	if err := laser.Validate(); err != nil {
		t.Errorf("default laser config should validate, got %v", err)
	}
	laser.Beam.Velocity = -1
	if err := laser.Validate(); err == nil {
		t.Error("negative beam velocity should fail validation")
	}
}

func TestApplyFifteenPreset(t *testing.T) {
	cfg := DefaultFifteenConfig()

	ApplyFifteenPreset(&cfg, DifficultyEasy)
	if cfg.Board.Size != 3 {
		t.Errorf("easy board size = %d, expected 3", cfg.Board.Size)
	}

	ApplyFifteenPreset(&cfg, DifficultyHard)
	if cfg.Board.Size != 5 {
		t.Errorf("hard board size = %d, expected 5", cfg.Board.Size)
	}

	// Fixed keeps whatever was loaded.
	ApplyFifteenPreset(&cfg, DifficultyFixed)
	if cfg.Board.Size != 5 {
		t.Errorf("fixed preset changed board size to %d", cfg.Board.Size)
	}
}

func TestDifficultyManagerSpeed(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 20},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.5},
	})

	if got := mgr.Speed(40, 0, 0); got != 40 {
		t.Errorf("Speed at score 0 = %v, expected base 40", got)
	}
	if got := mgr.Speed(40, 10, 0); got != 70 {
		t.Errorf("Speed at half progression = %v, expected 70", got)
	}
	if got := mgr.Speed(40, 20, 0); got != 100 {
		t.Errorf("Speed at max progression = %v, expected 100", got)
	}
	// Past max clamps
	if got := mgr.Speed(40, 50, 0); got != 100 {
		t.Errorf("Speed past max = %v, expected clamp at 100", got)
	}
}
