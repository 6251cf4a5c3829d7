// Package sigma implements Sigma Bird, a Flappy Bird-style game.
// The bird falls under gravity, flaps upward on input, and must pass
// through the gaps of pipes scrolling in from the right.
//
// Game holds all simulation state and advances it one fixed tick at a time.
// It never reads a clock or a global random source: the host drives Tick,
// forwards input as Flap, and paints RenderState through a Surface.
package sigma

import (
	"math/rand"

	"github.com/vovakirdan/sigma-bird/internal/config"
	"github.com/vovakirdan/sigma-bird/internal/core"
)

const (
	ID    = "sigma"
	Title = "Sigma Bird"
)

// Status is the session state. The only transition is Running -> Over.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// BirdState is the bird's vertical position (top of hitbox) and velocity.
type BirdState struct {
	Y        float64
	Velocity float64
}

// RenderState is an immutable snapshot of everything a renderer needs.
type RenderState struct {
	BirdY        float64
	BirdVelocity float64
	Pipes        []Pipe
	Status       Status
	Score        int
	Ticks        int
}

// Game implements the Sigma Bird game loop.
type Game struct {
	cfg        config.SigmaConfig
	bird       BirdState
	pipes      *PipeManager
	difficulty *config.DifficultyManager
	status     Status
	score      int
	ticks      int
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithBird starts the session from the given bird state.
func WithBird(b BirdState) Option {
	return func(g *Game) {
		g.bird = b
	}
}

// WithPipes starts the session with the given pipes already on screen.
func WithPipes(pipes []Pipe) Option {
	return func(g *Game) {
		g.pipes.Restore(pipes)
	}
}

// New creates a game drawing pipe gaps from rng.
func New(cfg config.SigmaConfig, rng *rand.Rand, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		pipes:      NewPipeManager(rng, cfg.Surface, cfg.Pipes),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.bird = BirdState{Y: cfg.Bird.StartY}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewSeeded creates a game with a deterministic random source.
func NewSeeded(cfg config.SigmaConfig, seed int64, opts ...Option) *Game {
	return New(cfg, rand.New(rand.NewSource(seed)), opts...)
}

// Reset starts a new session with a fresh random source.
func (g *Game) Reset(seed int64) {
	g.bird = BirdState{Y: g.cfg.Bird.StartY}
	g.pipes.Reset(rand.New(rand.NewSource(seed)))
	g.status = StatusRunning
	g.score = 0
	g.ticks = 0
}

// Tick advances the simulation by one step. It is a no-op once the game is over.
func (g *Game) Tick() {
	if g.status == StatusOver {
		return
	}
	g.ticks++

	g.bird.Velocity += g.cfg.Physics.Gravity
	g.bird.Y += g.bird.Velocity

	speed := g.difficulty.Speed(g.cfg.Physics.PipeSpeed, g.score, g.ticks)
	g.score += g.pipes.Advance(speed, g.cfg.Bird.X)

	if g.pipes.ShouldSpawn() {
		g.pipes.Spawn()
	}

	if g.collided() {
		g.status = StatusOver
	}
}

// Flap sets the bird's velocity to the flap strength, replacing whatever
// velocity it had.
func (g *Game) Flap() {
	if g.status == StatusOver {
		return
	}
	g.bird.Velocity = g.cfg.Physics.FlapStrength
}

// Step applies one frame of input and advances one tick.
func (g *Game) Step(in core.InputFrame) core.GameState {
	if in.Has(core.ActionFlap) {
		g.Flap()
	}
	g.Tick()
	return g.State()
}

func (g *Game) collided() bool {
	bird := g.birdRect()
	if bird.Y < 0 || bird.Bottom() > g.cfg.Surface.Height {
		return true
	}
	return g.pipes.Collides(bird)
}

func (g *Game) birdRect() core.RectF {
	return core.NewRectF(g.cfg.Bird.X, g.bird.Y, g.cfg.Bird.Width, g.cfg.Bird.Height)
}

// RenderState returns a snapshot safe to hand to another goroutine.
func (g *Game) RenderState() RenderState {
	return RenderState{
		BirdY:        g.bird.Y,
		BirdVelocity: g.bird.Velocity,
		Pipes:        g.pipes.Snapshot(),
		Status:       g.status,
		Score:        g.score,
		Ticks:        g.ticks,
	}
}

// State returns the front-end summary of the session.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusOver,
	}
}

func (g *Game) Status() Status             { return g.status }
func (g *Game) Over() bool                 { return g.status == StatusOver }
func (g *Game) Score() int                 { return g.score }
func (g *Game) Ticks() int                 { return g.ticks }
func (g *Game) Bird() BirdState            { return g.bird }
func (g *Game) Config() config.SigmaConfig { return g.cfg }
