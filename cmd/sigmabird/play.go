package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sigma-bird/internal/games/sigma"
	"github.com/vovakirdan/sigma-bird/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game directly in the terminal.

Controls:
  Space/Up/W/Click - Flap
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, constant pipe speed

Examples:
  sigmabird play
  sigmabird play --difficulty easy
  sigmabird play --seed 42 --fps 30
  sigmabird play --config ./my-sigma.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := gameConfig()
	if err != nil {
		fatal("%v", err)
	}

	cfg := runtimeConfig(terminalSize())
	game := sigma.NewSeeded(gameCfg, seed())

	store := openStore()
	runErr := tui.Run(game, store, cfg, flagPlayer)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}

// terminalSize returns the stdout size, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
