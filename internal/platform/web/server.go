// Package web serves Sigma Bird to browsers: an HTML canvas page and a
// WebSocket that streams draw lists while the game runs on the server.
package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/sigma-bird/internal/clock"
	"github.com/vovakirdan/sigma-bird/internal/config"
	"github.com/vovakirdan/sigma-bird/internal/storage"
)

//go:embed static/index.html
var indexHTML []byte

// Connection limits.
const (
	readLimit       = 4 << 10
	pongWait        = 60 * time.Second
	pingPeriod      = 25 * time.Second
	writeWait       = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	maxNameLen      = 24
)

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the simulation rate for every connection.
	TickRate int

	// Game is the configuration every connection is played with.
	Game config.SigmaConfig
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		TickRate: clock.DefaultRate,
		Game:     config.DefaultSigmaConfig(),
	}
}

// Server hosts one game per WebSocket connection.
type Server struct {
	config   Config
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server

	// ctx ends every running session on shutdown; hijacked
	// connections are not tracked by http.Server.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server. The store and logger may be nil.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "sigma-web",
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		ctx:    ctx,
		cancel: cancel,
	}

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /api/scores", s.handleScores)
	return mux
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("web: cannot listen on %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting web server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.cancel()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	}
}

// Shutdown ends all sessions and stops the HTTP server.
func (s *Server) Shutdown() error {
	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, 100)
	}

	var entries []storage.ScoreEntry
	if s.store != nil {
		var err error
		entries, err = s.store.TopScores(limit)
		if err != nil {
			s.logger.Error("cannot load scores", "error", err)
			http.Error(w, "cannot load scores", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scoresJSON(entries)); err != nil {
		s.logger.Debug("cannot write scores", "error", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	player := playerName(r.URL.Query().Get("name"))
	s.logger.Info("session started", "player", player, "remote", r.RemoteAddr)

	sess := newSession(conn, s.config, s.store, player)
	err = sess.run(s.ctx)

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		s.logger.Info("session ended", "player", player, "remote", r.RemoteAddr, "score", sess.best)
	default:
		s.logger.Warn("session ended", "player", player, "remote", r.RemoteAddr, "error", err)
	}
}

// playerName trims and bounds a client-supplied name.
func playerName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return storage.AnonymousPlayer
	}
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen])
	}
	return name
}
