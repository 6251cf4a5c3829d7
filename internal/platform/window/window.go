// Package window runs Sigma Bird in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/sigma-bird/internal/clock"
	"github.com/vovakirdan/sigma-bird/internal/core"
	"github.com/vovakirdan/sigma-bird/internal/games/sigma"
	"github.com/vovakirdan/sigma-bird/internal/storage"
)

var (
	skyColor  = color.RGBA{135, 206, 235, 255}
	textColor = color.RGBA{0, 0, 0, 255}
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {255, 255, 255, 255},
	core.ColorRed:          {220, 50, 47, 255},
	core.ColorGreen:        {0, 128, 0, 255},
	core.ColorYellow:       {255, 255, 0, 255},
	core.ColorBlue:         {38, 139, 210, 255},
	core.ColorCyan:         {42, 161, 152, 255},
	core.ColorWhite:        {238, 238, 238, 255},
	core.ColorBrightGreen:  {0, 255, 0, 255},
	core.ColorBrightYellow: {255, 215, 0, 255},
	core.ColorSky:          skyColor,
	core.ColorGray:         {128, 128, 128, 255},
}

// RGBA returns the window color for c.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// ImageSurface paints onto an ebiten image in surface units.
type ImageSurface struct {
	dst  *ebiten.Image
	w, h float64
}

func (s *ImageSurface) Ready() bool {
	return s.dst != nil && s.w > 0 && s.h > 0
}

func (s *ImageSurface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *ImageSurface) Clear() {
	s.dst.Fill(skyColor)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), RGBA(c), false)
}

// Input is the set of controls pressed since the previous update.
type Input struct {
	Flap    bool
	Pause   bool
	Restart bool
	Quit    bool
}

func readInput() Input {
	return Input{
		Flap: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit: inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Game implements ebiten.Game on top of a sigma.Game.
// Ebitengine calls Update at the configured TPS, so each Update is one tick.
type Game struct {
	game    *sigma.Game
	store   *storage.Store
	player  string
	best    int
	paused  bool
	saved   bool
	surface ImageSurface
	face    font.Face
}

// New wraps game for a desktop window. The store may be nil.
func New(game *sigma.Game, store *storage.Store, player string) *Game {
	if player == "" {
		player = storage.AnonymousPlayer
	}
	cfg := game.Config()
	g := &Game{
		game:    game,
		store:   store,
		player:  player,
		surface: ImageSurface{w: cfg.Surface.Width, h: cfg.Surface.Height},
		face:    basicfont.Face7x13,
	}
	if store != nil {
		if best, err := store.PlayerBest(player); err == nil {
			g.best = best
		}
	}
	return g
}

// Update reads input and advances the game by one tick.
func (g *Game) Update() error {
	return g.step(readInput())
}

func (g *Game) step(in Input) error {
	if in.Quit {
		return ebiten.Termination
	}

	if g.game.Over() {
		if in.Restart {
			g.game.Reset(time.Now().UnixNano())
			g.saved = false
		}
		return nil
	}

	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	if in.Flap {
		g.game.Flap()
	}
	g.game.Tick()

	if g.game.Over() && !g.saved {
		g.saveScore()
		g.saved = true
	}
	return nil
}

func (g *Game) saveScore() {
	score := g.game.Score()
	if score > g.best {
		g.best = score
	}
	if g.store == nil || score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	g.store.SaveScore(storage.ScoreEntry{
		Player: g.player,
		Score:  score,
		Ticks:  g.game.Ticks(),
		Mode:   g.game.Config().Pipes.Mode,
	})
}

// Draw paints the current state and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	sigma.Paint(&g.surface, g.game.RenderState(), g.game.Config())

	hud := fmt.Sprintf("Score: %d  Best: %d", g.game.Score(), max(g.best, g.game.Score()))
	text.Draw(screen, hud, g.face, 10, 20, textColor)

	w, h := g.surface.Size()
	switch {
	case g.game.Over():
		g.drawCentered(screen, "GAME OVER", w, h/2)
		g.drawCentered(screen, "Press R to restart", w, h/2+20)
	case g.paused:
		g.drawCentered(screen, "PAUSED", w, h/2)
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, msg string, w, y float64) {
	x := (int(w) - font.MeasureString(g.face, msg).Round()) / 2
	text.Draw(screen, msg, g.face, x, int(y), textColor)
}

// Layout keeps the logical surface size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.surface.Size()
	return int(w), int(h)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, tickRate int, scale float64) error {
	if tickRate <= 0 {
		tickRate = clock.DefaultRate
	}
	if scale <= 0 {
		scale = 1
	}
	w, h := g.surface.Size()

	ebiten.SetTPS(tickRate)
	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle(sigma.Title)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
