// Package config provides YAML-based game configuration loading and
// difficulty management for Sigma Bird.
package config

import (
	"errors"
	"fmt"
)

// Pipe geometry models. See PipeConfig.Mode.
const (
	PipeModePositional = "positional"
	PipeModeLegacy     = "legacy"
)

// SigmaConfig contains all configuration for the game.
type SigmaConfig struct {
	Surface    SurfaceConfig    `yaml:"surface"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipeConfig       `yaml:"pipes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SurfaceConfig is the logical drawing surface, fixed for a session.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick motion constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	FlapStrength float64 `yaml:"flap_strength"` // Negative = up
	PipeSpeed    float64 `yaml:"pipe_speed"`
}

// BirdConfig defines the bird's fixed column and hitbox.
type BirdConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartY float64 `yaml:"start_y"`
}

// PipeConfig defines pipe geometry and the spawn cadence.
type PipeConfig struct {
	Mode     string  `yaml:"mode"`     // "positional" or "legacy"
	Width    float64 `yaml:"width"`    // Horizontal band width
	Height   float64 `yaml:"height"`   // Legacy culling depth
	Spacing  float64 `yaml:"spacing"`  // Vertical gap height
	Interval float64 `yaml:"interval"` // Horizontal distance between spawns (positional)
	LegacyX  float64 `yaml:"legacy_x"` // Fixed draw column (legacy)
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to pipe speed at max difficulty
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

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SigmaConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports every value that would make the simulation meaningless.
func (c SigmaConfig) Validate() error {
	var errs []error
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface must be positive, got %gx%g", c.Surface.Width, c.Surface.Height))
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		errs = append(errs, fmt.Errorf("bird size must be positive, got %gx%g", c.Bird.Width, c.Bird.Height))
	}
	if c.Pipes.Width <= 0 {
		errs = append(errs, fmt.Errorf("pipe width must be positive, got %g", c.Pipes.Width))
	}
	if c.Pipes.Spacing <= 0 || c.Pipes.Spacing >= c.Surface.Height {
		errs = append(errs, fmt.Errorf("pipe spacing must be in (0, %g), got %g", c.Surface.Height, c.Pipes.Spacing))
	}
	if c.Physics.PipeSpeed <= 0 {
		errs = append(errs, fmt.Errorf("pipe speed must be positive, got %g", c.Physics.PipeSpeed))
	}
	switch c.Pipes.Mode {
	case PipeModePositional:
		if c.Pipes.Interval <= 0 {
			errs = append(errs, fmt.Errorf("pipe interval must be positive, got %g", c.Pipes.Interval))
		}
	case PipeModeLegacy:
		if c.Pipes.Height <= 0 {
			errs = append(errs, fmt.Errorf("pipe height must be positive, got %g", c.Pipes.Height))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown pipe mode %q", c.Pipes.Mode))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
