package sigma

import (
	"fmt"

	"github.com/vovakirdan/sigma-bird/internal/config"
	"github.com/vovakirdan/sigma-bird/internal/core"
)

// Element colors.
const (
	BirdColor = core.ColorYellow
	PipeColor = core.ColorGreen
)

// Surface is a 2D drawing target with rectangle fills and a known size,
// in logical surface units.
type Surface interface {
	Size() (w, h float64)
	Clear()
	FillRect(x, y, w, h float64, c core.Color)
}

// readier is implemented by surfaces that can be temporarily unavailable.
type readier interface {
	Ready() bool
}

// Paint clears s and draws one frame: each pipe as an upper and a lower
// segment at its horizontal band, then the bird.
// A nil or unready surface skips the frame.
func Paint(s Surface, st RenderState, cfg config.SigmaConfig) {
	if s == nil {
		return
	}
	if r, ok := s.(readier); ok && !r.Ready() {
		return
	}

	_, h := s.Size()
	s.Clear()

	for _, p := range st.Pipes {
		top := p.TopRect(cfg.Pipes.Width)
		if !top.Empty() {
			s.FillRect(top.X, top.Y, top.W, top.H, PipeColor)
		}
		bottom := p.BottomRect(cfg.Pipes.Width, h)
		if !bottom.Empty() {
			s.FillRect(bottom.X, bottom.Y, bottom.W, bottom.H, PipeColor)
		}
	}

	s.FillRect(cfg.Bird.X, st.BirdY, cfg.Bird.Width, cfg.Bird.Height, BirdColor)
}

// ScreenSurface scales the logical surface onto a terminal character grid.
type ScreenSurface struct {
	screen *core.Screen
	w, h   float64
}

// NewScreenSurface wraps screen as a w by h logical surface.
func NewScreenSurface(screen *core.Screen, w, h float64) *ScreenSurface {
	return &ScreenSurface{screen: screen, w: w, h: h}
}

func (s *ScreenSurface) Ready() bool {
	return s.screen != nil && s.screen.Width() > 0 && s.screen.Height() > 0 && s.w > 0 && s.h > 0
}

func (s *ScreenSurface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

func (s *ScreenSurface) FillRect(x, y, w, h float64, c core.Color) {
	sx := float64(s.screen.Width()) / s.w
	sy := float64(s.screen.Height()) / s.h
	cells := core.NewRectF(x, y, w, h).Scale(sx, sy)
	s.screen.FillRect(cells, glyph(c), c)
}

// glyph keeps elements distinguishable in uncolored output such as screenshots.
func glyph(c core.Color) rune {
	if c == BirdColor {
		return '●'
	}
	return '█'
}

// Render draws the current game state and HUD to a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	Paint(NewScreenSurface(dst, g.cfg.Surface.Width, g.cfg.Surface.Height), g.RenderState(), g.cfg)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	if g.status == StatusOver {
		DrawBanner(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// DrawBanner draws a message box in the center of the screen.
func DrawBanner(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
