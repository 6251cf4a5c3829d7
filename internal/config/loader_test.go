package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultSigmaConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.5\npipes:\n  mode: legacy\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	assert.Equal(t, PipeModeLegacy, cfg.Pipes.Mode)
	// Unset keys keep their defaults
	assert.Equal(t, -15.0, cfg.Physics.FlapStrength)
	assert.Equal(t, 200.0, cfg.Pipes.Spacing)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("physics: [1, 2"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	data := []byte("pipes:\n  spacing: 900\n  mode: sideways\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipe spacing")
	assert.Contains(t, err.Error(), "sideways")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPipeMode, PipeModeLegacy)
	t.Setenv(EnvPipeSpeed, "3.5")

	cfg := DefaultSigmaConfig()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, PipeModeLegacy, cfg.Pipes.Mode)
	assert.Equal(t, 3.5, cfg.Physics.PipeSpeed)
	assert.Equal(t, 0.6, cfg.Physics.Gravity)

	t.Setenv(EnvGravity, "heavy")
	assert.Error(t, ApplyEnv(&cfg))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SIGMA_TEST_ONLY=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SIGMA_TEST_ONLY") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", Env("SIGMA_TEST_ONLY", "fallback"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "nope.env")), "missing files are skipped")
	assert.Equal(t, "fallback", Env("SIGMA_UNSET_KEY", "fallback"))
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  string
		enabled bool
		level   float64
	}{
		{"easy", true, 0.0},
		{"normal", true, 0.3},
		{"hard", true, 0.7},
		{"fixed", false, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			p, err := ParsePreset(tc.preset)
			require.NoError(t, err)

			cfg := DefaultSigmaConfig()
			ApplyPreset(&cfg, p)
			assert.Equal(t, tc.enabled, cfg.Difficulty.Enabled)
			assert.InDelta(t, tc.level, cfg.Difficulty.InitialLevel, 1e-9)
		})
	}

	_, err := ParsePreset("nightmare")
	assert.Error(t, err)

	cfg := DefaultSigmaConfig()
	ApplyPreset(&cfg, "")
	assert.Equal(t, DefaultSigmaConfig(), cfg, "empty preset leaves config untouched")
}
