package tui

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sigma-bird/internal/config"
	"github.com/vovakirdan/sigma-bird/internal/core"
	"github.com/vovakirdan/sigma-bird/internal/games/sigma"
	"github.com/vovakirdan/sigma-bird/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func newTestModel(store *storage.Store, opts ...sigma.Option) Model {
	game := sigma.NewSeeded(config.DefaultSigmaConfig(), 1, opts...)
	return NewModel(game, store, testRuntime(), "ann")
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelFlapAppliesOnNextTick(t *testing.T) {
	m := newTestModel(nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.game.Ticks() != 0 {
		t.Fatal("a key press alone should not advance the game")
	}

	m = tick(t, m)

	if v := m.game.Bird().Velocity; math.Abs(v-(-14.4)) > 1e-9 {
		t.Errorf("velocity after flap + tick = %f, expected -14.4", v)
	}
	if m.inputFrame.Has(core.ActionFlap) {
		t.Error("input frame should be cleared after the tick")
	}
}

func TestModelMouseClickFlaps(t *testing.T) {
	m := newTestModel(nil)

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)

	if m.game.Bird().Velocity >= 0 {
		t.Errorf("click should flap, velocity = %f", m.game.Bird().Velocity)
	}
}

func TestModelPauseStopsTicks(t *testing.T) {
	m := newTestModel(nil)

	m = update(t, m, runeKey('p'))
	if !m.State().Paused {
		t.Fatal("p should pause")
	}

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if m.game.Ticks() != 0 {
		t.Errorf("paused model advanced %d ticks", m.game.Ticks())
	}

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	if m.game.Ticks() != 1 {
		t.Errorf("resumed model should tick, got %d ticks", m.game.Ticks())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// The pipe passes the bird on the same tick the bird leaves the top edge.
	m := newTestModel(store,
		sigma.WithBird(sigma.BirdState{Y: 0, Velocity: -5}),
		sigma.WithPipes([]sigma.Pipe{{X: -9, Top: 0, Bottom: 600}}),
	)

	m = tick(t, m)
	if !m.State().GameOver || m.State().Score != 1 {
		t.Fatalf("setup: state = %+v, expected game over with score 1", m.State())
	}

	m = tick(t, m)
	m = tick(t, m)

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	if scores[0].Player != "ann" || scores[0].Score != 1 || scores[0].Ticks != 1 {
		t.Errorf("saved entry = %+v", scores[0])
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(nil, sigma.WithBird(sigma.BirdState{Y: 0, Velocity: -5}))
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("setup: game should be over")
	}

	m = update(t, m, runeKey('r'))
	m = tick(t, m)

	if m.State().GameOver {
		t.Error("r + tick should restart the game")
	}
	if m.game.Ticks() != 0 {
		t.Errorf("restarted game should start at tick 0, got %d", m.game.Ticks())
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(nil)
	m = tick(t, m)

	m = update(t, m, runeKey('r'))
	m = tick(t, m)

	if m.game.Ticks() != 2 {
		t.Errorf("r while running should not reset, ticks = %d", m.game.Ticks())
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := newTestModel(nil)

	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("b while running should be ignored")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b while paused should go back to menu")
	}
}

func TestModelViewShowsHUD(t *testing.T) {
	m := newTestModel(nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, "Best: 0") {
		t.Error("view should show the best score")
	}

	m = update(t, m, runeKey('p'))
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the banner")
	}
}

func TestSessionModelFlow(t *testing.T) {
	s := NewSessionModel(nil, config.DefaultSigmaConfig(), testRuntime(), "ann")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.view != viewGame {
		t.Fatalf("enter on Play should start the game, view = %v", s.view)
	}

	next, _ = s.Update(runeKey('p'))
	s = next.(SessionModel)
	next, _ = s.Update(runeKey('b'))
	s = next.(SessionModel)
	if s.view != viewTitle {
		t.Fatalf("b while paused should return to title, view = %v", s.view)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.view != viewScores {
		t.Fatalf("tab should open the scoreboard, view = %v", s.view)
	}
	if !strings.Contains(s.View(), "not being recorded") {
		t.Error("scoreboard without a store should say so")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.view != viewTitle {
		t.Fatalf("esc should return to title, view = %v", s.view)
	}

	next, cmd := s.Update(runeKey('q'))
	s = next.(SessionModel)
	if cmd == nil || !s.quitting {
		t.Error("q on the title should quit the session")
	}
}
