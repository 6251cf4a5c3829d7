package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by the CLI and by ApplyEnv.
const (
	EnvDB        = "SIGMA_DB"
	EnvSSHAddr   = "SIGMA_SSH_ADDR"
	EnvWebAddr   = "SIGMA_WEB_ADDR"
	EnvLogLevel  = "SIGMA_LOG_LEVEL"
	EnvPipeMode  = "SIGMA_PIPE_MODE"
	EnvPipeSpeed = "SIGMA_PIPE_SPEED"
	EnvGravity   = "SIGMA_GRAVITY"
)

// LoadDotEnv loads variables from the given .env files (default ".env").
// Variables already present in the environment win. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Env returns the value of key, or fallback when it is unset or empty.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ApplyEnv overrides physics and pipe settings from SIGMA_* variables.
func ApplyEnv(cfg *SigmaConfig) error {
	if v := os.Getenv(EnvPipeMode); v != "" {
		cfg.Pipes.Mode = v
	}
	if err := envFloat(EnvPipeSpeed, &cfg.Physics.PipeSpeed); err != nil {
		return err
	}
	return envFloat(EnvGravity, &cfg.Physics.Gravity)
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("config: %s=%q is not a number: %w", key, v, err)
	}
	*dst = f
	return nil
}
