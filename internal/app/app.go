//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"randkit/internal/core"
	"randkit/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type statusProvider interface {
	Status() string
}

// Game adapts a core demo to the ebiten.Game interface.
type Game struct {
	demo    core.Demo
	painter *render.GridPainter
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	showHUD  bool
	seed     int64
}

// New constructs a Game for the provided demo.
func New(demo core.Demo, scale int, seed int64) *Game {
	size := demo.Size()
	return &Game{
		demo:    demo,
		painter: render.NewGridPainter(size.W, size.H),
		palette: render.HeatPalette(256),
		scale:   scale,
		showHUD: true,
		seed:    seed,
	}
}

// Reset reinitializes the demo state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.demo.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the demo.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	if !g.paused || g.tickOnce {
		g.demo.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current demo canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.demo.Cells(), g.palette, g.scale)
	if g.showHUD {
		line := fmt.Sprintf("%s seed=%d", g.demo.Name(), g.seed)
		if p, ok := g.demo.(statusProvider); ok {
			line += "  " + p.Status()
		}
		ebitenutil.DebugPrint(screen, line)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.demo.Size()
	return s.W * g.scale, s.H * g.scale
}
