package sigma

import (
	"math/rand"

	"github.com/vovakirdan/sigma-bird/internal/config"
	"github.com/vovakirdan/sigma-bird/internal/core"
)

// Pipe is a vertical obstacle with a gap the bird must pass through.
// Solid segments lie above Top and below Bottom.
type Pipe struct {
	X      float64 // Left edge of the pipe band
	Top    float64 // Gap top edge
	Bottom float64 // Gap bottom edge
	Passed bool    // Already counted for scoring
}

// TopRect returns the upper solid segment.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.NewRectF(p.X, 0, width, p.Top)
}

// BottomRect returns the lower solid segment down to the surface floor.
func (p Pipe) BottomRect(width, surfaceH float64) core.RectF {
	return core.NewRectF(p.X, p.Bottom, width, surfaceH-p.Bottom)
}

// PipeManager handles spawning, movement, culling and collision of pipes.
type PipeManager struct {
	pipes    []Pipe
	rng      *rand.Rand
	surfaceW float64
	surfaceH float64
	cfg      config.PipeConfig
}

// NewPipeManager creates a pipe manager drawing gap positions from rng.
func NewPipeManager(rng *rand.Rand, surface config.SurfaceConfig, cfg config.PipeConfig) *PipeManager {
	return &PipeManager{
		pipes:    make([]Pipe, 0, 8),
		rng:      rng,
		surfaceW: surface.Width,
		surfaceH: surface.Height,
		cfg:      cfg,
	}
}

// Reset clears all pipes and swaps in a new random source.
func (pm *PipeManager) Reset(rng *rand.Rand) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rng
}

func (pm *PipeManager) legacy() bool {
	return pm.cfg.Mode == config.PipeModeLegacy
}

// Advance shifts pipes left by speed and culls the ones that left the surface.
// birdX is the bird's left edge, used for scoring.
// Returns the number of pipes that scored this tick.
func (pm *PipeManager) Advance(speed, birdX float64) int {
	if pm.legacy() {
		return pm.advanceLegacy(speed)
	}

	scored := 0
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= speed
		if !p.Passed && p.X+pm.cfg.Width < birdX {
			p.Passed = true
			scored++
		}
		if p.X+pm.cfg.Width < 0 {
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
	return scored
}

// advanceLegacy moves the gap edges up instead of moving the band.
// A culled pipe counts as passed.
func (pm *PipeManager) advanceLegacy(speed float64) int {
	scored := 0
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.Top -= speed
		p.Bottom -= speed
		if p.Top <= -pm.cfg.Height {
			scored++
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
	return scored
}

// ShouldSpawn applies the spawn cadence rule.
func (pm *PipeManager) ShouldSpawn() bool {
	if len(pm.pipes) == 0 {
		return true
	}
	latest := pm.pipes[len(pm.pipes)-1]
	if pm.legacy() {
		return latest.Top < pm.surfaceH-pm.cfg.Spacing
	}
	return latest.X < pm.surfaceW-pm.cfg.Interval
}

// Spawn appends one pipe with a uniformly random gap position.
func (pm *PipeManager) Spawn() Pipe {
	// Integer gap top in [0, H - spacing), like Math.floor(Math.random() * n)
	n := int(pm.surfaceH - pm.cfg.Spacing)
	r := 0.0
	if n > 0 {
		r = float64(pm.rng.Intn(n))
	}

	p := Pipe{
		X:      pm.surfaceW,
		Top:    r,
		Bottom: r + pm.cfg.Spacing,
	}
	if pm.legacy() {
		p = Pipe{
			X:      pm.cfg.LegacyX,
			Top:    pm.surfaceH - r,
			Bottom: r + pm.cfg.Spacing,
		}
	}

	pm.pipes = append(pm.pipes, p)
	return p
}

// Collides reports whether the bird box hits any pipe.
func (pm *PipeManager) Collides(bird core.RectF) bool {
	for _, p := range pm.pipes {
		if pm.legacy() {
			// Legacy band test is time-invariant: the bird column is
			// compared with the pipe width, not with the pipe position.
			inBand := bird.Right() > 0 && bird.X < pm.cfg.Width
			if inBand && (bird.Y < p.Top || bird.Bottom() > p.Bottom) {
				return true
			}
			continue
		}

		band := core.NewRectF(p.X, 0, pm.cfg.Width, pm.surfaceH)
		if !bird.OverlapsX(band) {
			continue
		}
		if bird.Y < p.Top || bird.Bottom() > p.Bottom {
			return true
		}
	}
	return false
}

// Pipes returns the live pipe slice. Callers must not retain it across ticks.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Snapshot returns a copy of the current pipes.
func (pm *PipeManager) Snapshot() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}

// Restore replaces the current pipes with a copy of pipes.
func (pm *PipeManager) Restore(pipes []Pipe) {
	pm.pipes = append(pm.pipes[:0], pipes...)
}
