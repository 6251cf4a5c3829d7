package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigma-bird/internal/config"
	"github.com/vovakirdan/sigma-bird/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with a canvas page. Each browser tab opens a
WebSocket and plays its own game on the server; draw lists are streamed
back every tick.

Endpoints:
  /             - Canvas page
  /ws?name=     - Game session
  /api/scores   - Top scores as JSON (?limit=N)

Examples:
  sigmabird web
  sigmabird web --addr :9000
  sigmabird web --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", config.Env(config.EnvWebAddr, ":8080"), "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger, err := newLogger("sigma-web")
	if err != nil {
		fatal("%v", err)
	}

	gameCfg, err := gameConfig()
	if err != nil {
		fatal("%v", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := web.DefaultConfig()
	cfg.Address = flagWebAddr
	cfg.Game = gameCfg
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(cfg, store, logger)
	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		stop()
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
