package main

import (
	"testing"

	"github.com/vovakirdan/sigma-bird/internal/config"
)

func TestGameConfigAppliesDifficulty(t *testing.T) {
	t.Setenv(config.EnvPipeMode, "")
	flagConfig = ""
	defer func() { flagDifficulty = "" }()

	tests := []struct {
		preset      string
		wantEnabled bool
		wantLevel   float64
	}{
		{"fixed", false, 0},
		{"hard", true, 0.7},
		{"normal", true, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			flagDifficulty = tt.preset
			cfg, err := gameConfig()
			if err != nil {
				t.Fatalf("gameConfig: %v", err)
			}
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if tt.wantEnabled && cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
		})
	}
}

func TestGameConfigRejectsUnknownDifficulty(t *testing.T) {
	flagDifficulty = "nightmare"
	defer func() { flagDifficulty = "" }()

	if _, err := gameConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestRuntimeConfig(t *testing.T) {
	oldFPS, oldSeed := flagFPS, flagSeed
	defer func() { flagFPS, flagSeed = oldFPS, oldSeed }()

	flagFPS, flagSeed = 30, 7
	cfg := runtimeConfig(100, 40)
	if cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("screen = %dx%d, want 100x40", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != 30 || cfg.Seed != 7 {
		t.Errorf("TickRate=%d Seed=%d, want 30 and 7", cfg.TickRate, cfg.Seed)
	}

	flagFPS = 0
	if got := runtimeConfig(80, 24).TickRate; got != 60 {
		t.Errorf("TickRate with --fps 0 = %d, want 60", got)
	}
}

func TestSeedUsesFlag(t *testing.T) {
	old := flagSeed
	defer func() { flagSeed = old }()

	flagSeed = 42
	if got := seed(); got != 42 {
		t.Errorf("seed() = %d, want 42", got)
	}
}
