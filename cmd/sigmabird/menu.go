package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigma-bird/internal/games/sigma"
	"github.com/vovakirdan/sigma-bird/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Start at the title screen.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, press B to return to the title screen.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  sigmabird menu
  sigmabird menu --fps 30
  sigmabird menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := gameConfig()
	if err != nil {
		fatal("%v", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(terminalSize())

	// Menu loop
	for {
		choice, updatedCfg, err := tui.RunTitle(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = updatedCfg

		switch choice {
		case tui.ChoicePlay:
			game := sigma.NewSeeded(gameCfg, seed())
			if err := tui.Run(game, store, cfg, flagPlayer); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}

		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
