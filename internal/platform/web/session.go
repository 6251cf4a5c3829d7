package web

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/sigma-bird/internal/clock"
	"github.com/vovakirdan/sigma-bird/internal/games/sigma"
	"github.com/vovakirdan/sigma-bird/internal/storage"
)

// session runs one game for one WebSocket connection.
// All game access happens on the goroutine running clock.Run; the reader
// goroutine only queues events.
type session struct {
	conn    *websocket.Conn
	config  Config
	store   *storage.Store
	player  string
	game    *sigma.Game
	surface *DrawList
	events  chan func()

	best       int
	saved      bool
	dirty      bool
	lastTicks  int
	lastStatus sigma.Status
}

func newSession(conn *websocket.Conn, cfg Config, store *storage.Store, player string) *session {
	s := &session{
		conn:    conn,
		config:  cfg,
		store:   store,
		player:  player,
		game:    sigma.NewSeeded(cfg.Game, time.Now().UnixNano()),
		surface: NewDrawList(cfg.Game.Surface.Width, cfg.Game.Surface.Height),
		events:  make(chan func(), 16),
		dirty:   true,
	}
	if store != nil {
		if best, err := store.PlayerBest(player); err == nil {
			s.best = best
		}
	}
	return s
}

// run plays until the connection drops or ctx is done.
func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.conn.SetReadLimit(readLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	if err := s.write(Welcome{
		Type:   MsgWelcome,
		Player: s.player,
		TickHz: s.config.TickRate,
		Width:  s.config.Game.Surface.Width,
		Height: s.config.Game.Surface.Height,
		Best:   s.best,
	}); err != nil {
		return err
	}

	go s.readLoop(ctx, cancel)
	go s.pingLoop(ctx, cancel)

	err := clock.Run(ctx, s.config.TickRate, s.game, s.events, s.frame)

	_ = s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
	return err
}

// readLoop turns client messages into events for the clock goroutine.
func (s *session) readLoop(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		msg, err := DecodeClient(data)
		if err != nil {
			continue
		}

		var ev func()
		switch msg.Type {
		case MsgFlap:
			ev = s.game.Flap
		case MsgRestart:
			ev = s.restart
		default:
			continue
		}

		select {
		case s.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// pingLoop keeps the read deadline alive on idle connections.
// WriteControl may run concurrently with the frame writer.
func (s *session) pingLoop(ctx context.Context, cancel context.CancelFunc) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				cancel()
				return
			}
		}
	}
}

// restart starts a new game once the current one is over.
func (s *session) restart() {
	if !s.game.Over() {
		return
	}
	s.game.Reset(time.Now().UnixNano())
	s.saved = false
	s.dirty = true
}

// frame sends the state after a tick. Unchanged frames are skipped, so a
// finished game stops streaming until it restarts.
func (s *session) frame() error {
	st := s.game.RenderState()

	if st.Status == sigma.StatusOver && !s.saved {
		s.saveScore(st)
		s.saved = true
	}

	if !s.dirty && st.Ticks == s.lastTicks && st.Status == s.lastStatus {
		return nil
	}
	s.dirty = false
	s.lastTicks = st.Ticks
	s.lastStatus = st.Status

	sigma.Paint(s.surface, st, s.config.Game)
	w, h := s.surface.Size()

	return s.write(Frame{
		Type:   MsgFrame,
		Width:  w,
		Height: h,
		Status: st.Status.String(),
		Score:  st.Score,
		Ticks:  st.Ticks,
		Ops:    s.surface.Ops(),
	})
}

func (s *session) saveScore(st sigma.RenderState) {
	if st.Score > s.best {
		s.best = st.Score
	}
	if s.store == nil || st.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	s.store.SaveScore(storage.ScoreEntry{
		Player: s.player,
		Score:  st.Score,
		Ticks:  st.Ticks,
		Mode:   s.config.Game.Pipes.Mode,
	})
}

func (s *session) write(v any) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(v)
}
