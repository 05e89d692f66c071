package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"VerletCloth/sim"
)

const basicFontHeight = 13

// ebitenCanvas implements sim.Canvas on an ebiten image.
type ebitenCanvas struct {
	screen *ebiten.Image
	face   *text.GoXFace
}

func newEbitenCanvas() ebitenCanvas {
	return ebitenCanvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (c *ebitenCanvas) DrawSegment(a, b sim.Vec3, width float32, clr color.Color) {
	vector.StrokeLine(c.screen, a.X, a.Y, b.X, b.Y, width, clr, true)
}

func (c *ebitenCanvas) DrawPoint(p sim.Vec3, radius float32, clr color.Color) {
	vector.DrawFilledCircle(c.screen, p.X, p.Y, radius, clr, true)
}

// DrawText draws s with its top-left corner at (x, y), scaled so the font is
// size pixels tall.
func (c *ebitenCanvas) DrawText(s string, x, y, size float32, clr color.Color) {
	op := &text.DrawOptions{}
	scale := float64(size) / basicFontHeight
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.screen, s, c.face, op)
}

// Draw renders the cloth and, in debug mode, the FPS and solver overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.canvas.screen = screen
	g.state.Draw(&g.canvas)

	if g.cfg.Debug {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		simMS := g.lastSimDuration.Seconds() * 1000
		status := "running"
		if g.paused {
			status = "paused (. to step)"
		}
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f (target %.0f)\nSim: %.3f ms\nIterations: %d (+/-)\n%s, R resets",
			fps, tps, defaultTPS, simMS, g.state.Solver.Iterations, status)
		ebitenutil.DebugPrintAt(screen, debugMsg, 0, g.height-80)
	}
}

// Layout follows the window size so the cloth's bounds track resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
