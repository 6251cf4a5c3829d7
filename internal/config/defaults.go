package config

import (
	_ "embed"
)

//go:embed defaults/sigma.yaml
var defaultSigmaYAML []byte

// DefaultSigmaConfig returns the built-in configuration.
// It mirrors defaults/sigma.yaml and is used if the embedded file is unreadable.
func DefaultSigmaConfig() SigmaConfig {
	return SigmaConfig{
		Surface: SurfaceConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			FlapStrength: -15,
			PipeSpeed:    2,
		},
		Bird: BirdConfig{
			X:      50,
			Width:  30,
			Height: 30,
			StartY: 250,
		},
		Pipes: PipeConfig{
			Mode:     PipeModePositional,
			Width:    60,
			Height:   300,
			Spacing:  200,
			Interval: 200,
			LegacyX:  300,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSigmaYAML
}
