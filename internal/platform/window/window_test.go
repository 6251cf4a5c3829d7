package window

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sigma-bird/internal/config"
	"github.com/vovakirdan/sigma-bird/internal/core"
	"github.com/vovakirdan/sigma-bird/internal/games/sigma"
	"github.com/vovakirdan/sigma-bird/internal/storage"
)

func newTestGame(t *testing.T, store *storage.Store, opts ...sigma.Option) *Game {
	t.Helper()
	return New(sigma.NewSeeded(config.DefaultSigmaConfig(), 1, opts...), store, "ann")
}

func TestStepTicksOncePerUpdate(t *testing.T) {
	g := newTestGame(t, nil)

	require.NoError(t, g.step(Input{}))
	require.NoError(t, g.step(Input{Flap: true}))

	assert.Equal(t, 2, g.game.Ticks())
	assert.InDelta(t, -14.4, g.game.Bird().Velocity, 1e-9)
}

func TestStepQuit(t *testing.T) {
	g := newTestGame(t, nil)
	err := g.step(Input{Quit: true})
	assert.True(t, errors.Is(err, ebiten.Termination))
}

func TestStepPause(t *testing.T) {
	g := newTestGame(t, nil)

	require.NoError(t, g.step(Input{Pause: true}))
	require.NoError(t, g.step(Input{Flap: true}))
	assert.Zero(t, g.game.Ticks(), "paused window should not tick")

	require.NoError(t, g.step(Input{Pause: true}))
	assert.Equal(t, 1, g.game.Ticks())
}

func TestStepRestartOnlyWhenOver(t *testing.T) {
	g := newTestGame(t, nil, sigma.WithBird(sigma.BirdState{Y: 0, Velocity: -5}))

	require.NoError(t, g.step(Input{Restart: true}))
	require.True(t, g.game.Over())

	require.NoError(t, g.step(Input{Restart: true}))
	assert.False(t, g.game.Over())
	assert.Zero(t, g.game.Ticks())
}

func TestStepSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := newTestGame(t, store,
		sigma.WithBird(sigma.BirdState{Y: 0, Velocity: -5}),
		sigma.WithPipes([]sigma.Pipe{{X: -9, Top: 0, Bottom: 600}}),
	)

	for i := 0; i < 3; i++ {
		require.NoError(t, g.step(Input{}))
	}

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "ann", scores[0].Player)
	assert.Equal(t, 1, scores[0].Score)
	assert.Equal(t, 1, g.best)
}

func TestLayoutIsSurfaceSize(t *testing.T) {
	g := newTestGame(t, nil)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 400, w)
	assert.Equal(t, 600, h)
}

func TestSurfaceNotReadyWithoutImage(t *testing.T) {
	g := newTestGame(t, nil)
	assert.False(t, g.surface.Ready())
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, palette[core.ColorYellow], RGBA(sigma.BirdColor))
	assert.Equal(t, palette[core.ColorGreen], RGBA(sigma.PipeColor))
	assert.Equal(t, palette[core.ColorDefault], RGBA(core.Color(200)))
}
