package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"VerletCloth/sim"
)

// ebitenPointer polls the mouse cursor and left button.
type ebitenPointer struct{}

func (ebitenPointer) Pointer() sim.PointerState {
	x, y := ebiten.CursorPosition()
	return sim.PointerState{
		X:    float32(x),
		Y:    float32(y),
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// autoDrag is a scripted pointer: it grabs a random particle, sweeps it along
// a random heading for a while, lets go and repeats until its deadline.
type autoDrag struct {
	state    *sim.State
	display  sim.Display
	rng      *rand.Rand
	now      func() time.Time
	deadline time.Time

	x, y       float32
	dirX, dirY float32
	frames     int
}

func newAutoDrag(state *sim.State, display sim.Display, duration time.Duration, seed int64) *autoDrag {
	a := &autoDrag{
		state:   state,
		display: display,
		rng:     rand.New(rand.NewSource(seed + 3)),
		now:     time.Now,
	}
	a.deadline = a.now().Add(duration)
	return a
}

// Done reports whether the scripted drag has run for its full duration.
func (a *autoDrag) Done() bool {
	return a.now().After(a.deadline)
}

// Pointer returns the scripted pointer for this frame. The button is released
// on the last frame of each sweep so the next sweep grabs a new particle.
func (a *autoDrag) Pointer() sim.PointerState {
	if a.Done() {
		return sim.PointerState{}
	}
	if a.frames <= 0 {
		a.randomizeSweep()
	}
	a.frames--
	ptr := sim.PointerState{X: a.x, Y: a.y, Down: a.frames > 0}

	w, h := a.display.Size()
	a.x += a.dirX * autoDragSpeed
	a.y += a.dirY * autoDragSpeed
	if a.x < 0 || a.x > w {
		a.dirX = -a.dirX
	}
	if a.y < 0 || a.y > h {
		a.dirY = -a.dirY
	}
	return ptr
}

// randomizeSweep starts a new sweep on a random particle.
func (a *autoDrag) randomizeSweep() {
	id := a.rng.Intn(a.state.Particles.Len())
	p := a.state.Particles.Pos[id]
	a.x, a.y = p.X, p.Y

	angle := a.rng.Float64() * 2 * math.Pi
	a.dirX = float32(math.Cos(angle))
	a.dirY = float32(math.Sin(angle))
	a.frames = 20 + a.rng.Intn(50)
}

// handleDebugControls processes the keyboard shortcuts.
func (g *Game) handleDebugControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustIterations(-iterationStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustIterations(iterationStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused && inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
}

// adjustIterations changes the relaxation passes within bounds.
func (g *Game) adjustIterations(delta int) {
	n := g.state.Solver.Iterations + delta
	if n < minIterations {
		n = minIterations
	} else if n > maxIterations {
		n = maxIterations
	}
	g.state.SetIterations(n)
}
