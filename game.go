package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"VerletCloth/sim"
)

// Game drives the simulation from ebiten's update loop. It is the frame
// driver that owns the sim.State.
type Game struct {
	cfg   *Config
	log   *zap.Logger
	state *sim.State

	width, height int

	pointer  sim.PointerSource
	autoDrag *autoDrag
	stopPGO  func()

	paused   bool
	stepOnce bool

	lastSimDuration time.Duration
	lastSkipped     uint64
	lastSkipLog     time.Time

	canvas ebitenCanvas

	audioCtx    *audio.Context
	audioStream *strainAudioStream
	audioPlayer *audio.Player
}

// newGame constructs a Game with the cloth centred in the initial window.
func newGame(cfg *Config, log *zap.Logger) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		log:     log,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		pointer: ebitenPointer{},
		canvas:  newEbitenCanvas(),
	}
	state, err := newState(cfg, float32(g.width), float32(g.height))
	if err != nil {
		return nil, err
	}
	g.state = state

	if cfg.Audio.Enabled {
		g.audioCtx = audio.NewContext(audioSampleRate)
		g.audioStream = newStrainAudioStream(audioSampleRate, strainToneHz)
		if player, err := g.audioCtx.NewPlayer(g.audioStream); err != nil {
			log.Warn("audio player creation failed", zap.Error(err))
		} else {
			g.audioPlayer = player
			g.audioPlayer.SetBufferSize(audioPlayerBufferLatency)
			g.audioPlayer.Play()
		}
	}
	return g, nil
}

// Size reports the current layout size; it is the simulation's Display.
func (g *Game) Size() (float32, float32) {
	return float32(g.width), float32(g.height)
}

// Update polls input and advances the cloth by one fixed time step.
func (g *Game) Update() error {
	g.handleDebugControls()

	if g.autoDrag != nil && g.autoDrag.Done() {
		g.finishAutoDrag()
		return ebiten.Termination
	}

	if g.paused && !g.stepOnce {
		return nil
	}
	g.stepOnce = false

	simStart := time.Now()
	g.state.Frame(g, g.pointer)
	g.lastSimDuration = time.Since(simStart)

	if g.audioStream != nil {
		mean, _ := sim.Strain(g.state.Particles, g.state.Constraints.Sticks)
		g.audioStream.SetStrain(mean)
	}
	g.logSkippedSticks()
	return nil
}

// logSkippedSticks reports degenerate sticks, at most once per interval.
func (g *Game) logSkippedSticks() {
	skipped := g.state.Solver.Skipped
	if skipped == g.lastSkipped {
		return
	}
	now := time.Now()
	if now.Sub(g.lastSkipLog) < skippedLogInterval {
		return
	}
	g.log.Warn("skipped coincident stick corrections",
		zap.Uint64("new", skipped-g.lastSkipped),
		zap.Uint64("total", skipped))
	g.lastSkipped = skipped
	g.lastSkipLog = now
}

// reset lays the cloth out again in the middle of the current window.
func (g *Game) reset() {
	state, err := newState(g.cfg, float32(g.width), float32(g.height))
	if err != nil {
		g.log.Error("reset failed", zap.Error(err))
		return
	}
	state.SetIterations(g.state.Solver.Iterations)
	g.state = state
	if g.autoDrag != nil {
		g.autoDrag.state = state
	}
	g.log.Info("cloth reset")
}

// enableAutoDrag replaces the mouse with a scripted pointer for duration and
// calls stop when it expires.
func (g *Game) enableAutoDrag(duration time.Duration, stop func()) {
	g.autoDrag = newAutoDrag(g.state, g, duration, g.cfg.seed())
	g.pointer = g.autoDrag
	g.stopPGO = stop
}

func (g *Game) finishAutoDrag() {
	if g.stopPGO != nil {
		g.stopPGO()
		g.stopPGO = nil
	}
}

func (g *Game) close() {
	g.finishAutoDrag()
	if g.audioPlayer != nil {
		_ = g.audioPlayer.Close()
	}
}

// runEbiten opens the window and runs the game until it is closed.
func runEbiten(cfg *Config, log *zap.Logger) error {
	g, err := newGame(cfg, log)
	if err != nil {
		return err
	}
	defer g.close()

	if cfg.Profile.RecordDefaultPGO {
		stop, err := startCPUProfile(defaultPGOPath, log)
		if err != nil {
			return err
		}
		log.Info("recording default.pgo", zap.Duration("duration", cfg.Profile.PGODuration))
		g.enableAutoDrag(cfg.Profile.PGODuration, stop)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(int(defaultTPS))

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	log.Info("window closed", zap.Uint64("frames", g.state.Frames))
	return nil
}
