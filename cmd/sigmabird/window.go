package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigma-bird/internal/games/sigma"
	"github.com/vovakirdan/sigma-bird/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the keyboard or mouse.

Controls:
  Space/Up/W/Click - Flap
  P                - Pause
  R                - Restart (after game over)
  Esc/Q            - Quit

Examples:
  sigmabird window
  sigmabird window --scale 2`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, err := gameConfig()
	if err != nil {
		fatal("%v", err)
	}

	store := openStore()

	g := window.New(sigma.NewSeeded(gameCfg, seed()), store, flagPlayer)
	runErr := window.Run(g, flagFPS, flagScale)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("%v", runErr)
	}
}
