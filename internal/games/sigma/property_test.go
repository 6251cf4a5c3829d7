package sigma

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vovakirdan/sigma-bird/internal/config"
)

func TestProperty_GravityStep(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	cfg := config.DefaultSigmaConfig()

	properties.Property("a running tick adds gravity to velocity and velocity to y", prop.ForAll(
		func(y, v float64) bool {
			g := NewSeeded(cfg, 1, WithBird(BirdState{Y: y, Velocity: v}))
			g.Tick()

			wantV := v + cfg.Physics.Gravity
			wantY := y + wantV
			return g.bird.Velocity == wantV && g.bird.Y == wantY
		},
		gen.Float64Range(100, 400),
		gen.Float64Range(-10, 10),
	))

	properties.TestingRun(t)
}

func TestProperty_FlapIsAbsolute(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	cfg := config.DefaultSigmaConfig()

	properties.Property("flap sets velocity to flap strength regardless of prior velocity", prop.ForAll(
		func(v float64) bool {
			g := NewSeeded(cfg, 1, WithBird(BirdState{Y: 250, Velocity: v}))
			g.Flap()
			return g.bird.Velocity == cfg.Physics.FlapStrength
		},
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}

func TestProperty_OverIsTerminal(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	cfg := config.DefaultSigmaConfig()

	properties.Property("no input changes the state after game over", prop.ForAll(
		func(seed int64, flaps []bool) bool {
			g := NewSeeded(cfg, seed, WithBird(BirdState{Y: 590}))
			for !g.Over() {
				g.Tick()
			}

			before := g.RenderState()
			for _, flap := range flaps {
				if flap {
					g.Flap()
				}
				g.Tick()
			}
			return reflect.DeepEqual(before, g.RenderState())
		},
		gen.Int64(),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestProperty_SpawnedGapHasFixedHeight(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	cfg := config.DefaultSigmaConfig()

	properties.Property("every spawned pipe has a gap of exactly the pipe spacing", prop.ForAll(
		func(seed int64) bool {
			pm := NewPipeManager(nil, cfg.Surface, cfg.Pipes)
			pm.Reset(newRand(seed))
			for i := 0; i < 2000; i++ {
				pm.Advance(cfg.Physics.PipeSpeed, cfg.Bird.X)
				if pm.ShouldSpawn() {
					p := pm.Spawn()
					if p.Bottom-p.Top != cfg.Pipes.Spacing {
						return false
					}
					if p.Top < 0 || p.Top >= cfg.Surface.Height-cfg.Pipes.Spacing {
						return false
					}
				}
				if len(pm.Pipes()) > 3 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
