package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"VerletCloth/sim"
)

const (
	stickRune    = '·'
	particleRune = 'o'
)

// terminalFrontend draws the cloth on a tcell screen. One character cell
// covers cellW x cellH world units; the pointer maps to cell centres.
type terminalFrontend struct {
	screen tcell.Screen
	state  *sim.State
	log    *zap.Logger

	cellW, cellH float32
	pointer      sim.PointerState

	// input is the pointer the cloth follows: the mouse, or autoDrag while
	// recording default.pgo.
	input    sim.PointerSource
	autoDrag *autoDrag
	stopPGO  func()
}

func newTerminalFrontend(screen tcell.Screen, cfg *Config, log *zap.Logger) (*terminalFrontend, error) {
	t := &terminalFrontend{
		screen: screen,
		log:    log,
		cellW:  float32(cfg.Terminal.CellWidth),
		cellH:  float32(cfg.Terminal.CellHeight),
	}
	w, h := t.Size()
	state, err := newState(cfg, w, h)
	if err != nil {
		return nil, err
	}
	t.state = state
	t.input = t
	return t, nil
}

// enableAutoDrag replaces the mouse with a scripted pointer for duration and
// calls stop when it expires.
func (t *terminalFrontend) enableAutoDrag(duration time.Duration, seed int64, stop func()) {
	t.autoDrag = newAutoDrag(t.state, t, duration, seed)
	t.input = t.autoDrag
	t.stopPGO = stop
}

func (t *terminalFrontend) finishAutoDrag() {
	if t.stopPGO != nil {
		t.stopPGO()
		t.stopPGO = nil
	}
}

// Size is the screen size in world units.
func (t *terminalFrontend) Size() (float32, float32) {
	cols, rows := t.screen.Size()
	return float32(cols) * t.cellW, float32(rows) * t.cellH
}

func (t *terminalFrontend) Pointer() sim.PointerState {
	return t.pointer
}

func (t *terminalFrontend) toWorld(x, y int) (float32, float32) {
	return (float32(x) + 0.5) * t.cellW, (float32(y) + 0.5) * t.cellH
}

func (t *terminalFrontend) toCell(p sim.Vec3) cell {
	return cell{
		x: int(math.Floor(float64(p.X / t.cellW))),
		y: int(math.Floor(float64(p.Y / t.cellH))),
	}
}

// handleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (t *terminalFrontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		wx, wy := t.toWorld(x, y)
		t.pointer = sim.PointerState{X: wx, Y: wy, Down: ev.Buttons()&tcell.Button1 != 0}
	case *tcell.EventResize:
		t.screen.Sync()
		cols, rows := t.screen.Size()
		t.log.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
	}
	return true
}

func (t *terminalFrontend) DrawSegment(a, b sim.Vec3, _ float32, clr color.Color) {
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))
	cols, rows := t.screen.Size()
	drawLine(t.toCell(a), t.toCell(b), cols, rows, func(x, y int) {
		t.screen.SetContent(x, y, stickRune, nil, style)
	})
}

func (t *terminalFrontend) DrawPoint(p sim.Vec3, _ float32, clr color.Color) {
	c := t.toCell(p)
	cols, rows := t.screen.Size()
	if c.x < 0 || c.x >= cols || c.y < 0 || c.y >= rows {
		return
	}
	t.screen.SetContent(c.x, c.y, particleRune, nil, tcell.StyleDefault.Foreground(tcell.FromImageColor(clr)))
}

// DrawText writes s from the cell containing (x, y). Text never wraps and
// the size is ignored.
func (t *terminalFrontend) DrawText(s string, x, y, _ float32, clr color.Color) {
	cols, rows := t.screen.Size()
	c := t.toCell(sim.Vec3{X: x, Y: y})
	c.y = clampCoord(c.y, 0, rows-1)
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))
	for i, r := range []rune(s) {
		if c.x+i >= cols {
			break
		}
		t.screen.SetContent(c.x+i, c.y, r, nil, style)
	}
}

func (t *terminalFrontend) Present() {
	t.screen.Show()
}

// frame advances the cloth one step and redraws the screen.
func (t *terminalFrontend) frame() {
	t.state.Frame(t, t.input)
	t.screen.Clear()
	t.state.Render(t, t)
}

// runTerminal runs the cloth in the terminal until the user quits.
func runTerminal(cfg *Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	t, err := newTerminalFrontend(screen, cfg, log)
	if err != nil {
		return err
	}
	defer t.finishAutoDrag()

	if cfg.Profile.RecordDefaultPGO {
		stop, err := startCPUProfile(defaultPGOPath, log)
		if err != nil {
			return err
		}
		log.Info("recording default.pgo", zap.Duration("duration", cfg.Profile.PGODuration))
		t.enableAutoDrag(cfg.Profile.PGODuration, cfg.seed(), stop)
	}
	return t.run(time.Second / time.Duration(cfg.Terminal.FPS))
}

// pumpEvents forwards screen events to events until the screen is finalised
// or stop is closed. It closes events when the screen stops delivering.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}

		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

// run polls events on a goroutine and steps the cloth on a ticker until a
// quit key arrives or the scripted drag finishes.
func (t *terminalFrontend) run(interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	stop := make(chan struct{})
	defer close(stop)
	eventChan := make(chan tcell.Event, 100)
	go pumpEvents(t.screen, eventChan, stop)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleEvent(ev) {
				t.log.Info("terminal closed", zap.Uint64("frames", t.state.Frames))
				return nil
			}
		case <-ticker.C:
			if t.autoDrag != nil && t.autoDrag.Done() {
				t.log.Info("scripted drag finished", zap.Uint64("frames", t.state.Frames))
				return nil
			}
			t.frame()
		}
	}
}
