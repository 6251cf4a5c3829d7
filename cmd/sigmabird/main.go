// sigmabird is a Flappy-Bird style game for the terminal, SSH, the browser
// and the desktop.
//
// Usage:
//
//	sigmabird play            - Play in the terminal
//	sigmabird menu            - Title screen with play and high scores
//	sigmabird serve           - Start SSH server for remote play
//	sigmabird web             - Serve the game to browsers
//	sigmabird window          - Play in a desktop window
//	sigmabird scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/sigma.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--player <name>       - Name stored with scores
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigma-bird/internal/config"
	"github.com/vovakirdan/sigma-bird/internal/core"
	"github.com/vovakirdan/sigma-bird/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sigmabird",
	Short: "Sigma Bird - flap between the pipes",
	Long: `Sigma Bird is a side-scrolling game: the bird falls under gravity,
a flap sends it upward, and pipes with a gap scroll in from the right.
Touching a pipe or the edge of the screen ends the game.

Available commands:
  play     - Play directly in the terminal
  menu     - Title screen with play and high scores
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers over WebSocket
  window   - Play in a desktop window
  scores   - View high scores

Examples:
  sigmabird play
  sigmabird play --difficulty hard
  sigmabird serve --ssh :2222
  sigmabird web --addr :8080
  sigmabird window --scale 1.5
  sigmabird scores`,
	SilenceUsage: true,
}

func init() {
	// .env values only fill variables that are not already set
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.Env(config.EnvDB, "~/.arcade/sigma.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.Env(config.EnvLogLevel, "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name stored with scores")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
}

func defaultPlayer() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return storage.AnonymousPlayer
}

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// gameConfig loads the YAML config and applies --difficulty.
func gameConfig() (config.SigmaConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SigmaConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig returns the front-end config for a screen of w x h cells.
func runtimeConfig(w, h int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = w
	cfg.ScreenH = h
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
