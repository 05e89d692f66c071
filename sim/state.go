package sim

import (
	"fmt"
	"image/color"
	"time"
)

var (
	stickColor    = color.RGBA{130, 130, 130, 255}
	particleColor = color.RGBA{255, 255, 255, 255}
	textColor     = color.RGBA{80, 80, 80, 255}
)

const (
	stickWidth   = 5
	textX, textY = 20, 20
	textSize     = 20
)

// Config holds every tunable of a cloth simulation.
type Config struct {
	Rows, Cols int
	Spacing    float32 // grid spacing and stick rest length
	Jitter     float32
	PrevJitter float32

	// Pins lists the pinned particle ids. Empty selects DefaultPinIDs unless
	// Unpinned is set.
	Pins     []int
	Unpinned bool

	Gravity            Vec3
	TimeStep           float32
	Iterations         int
	Damping            float32
	ClampEachIteration bool

	ParticleRadius float32
	GrabSlack      float32 // grab threshold is ParticleRadius + GrabSlack
}

// DefaultConfig returns a 10x10 cloth pinned along its top row.
func DefaultConfig() Config {
	return Config{
		Rows:           10,
		Cols:           10,
		Spacing:        20,
		Jitter:         1,
		Gravity:        Vec3{Y: 10 * 9.82},
		TimeStep:       0.01666667,
		Iterations:     1,
		Damping:        1,
		ParticleRadius: 3,
		GrabSlack:      3,
	}
}

// Validate rejects configurations the simulation cannot run.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.Rows, c.Cols)
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("%w: spacing %v", ErrInvalidGrid, c.Spacing)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("%w: time step %v", ErrInvalidConfig, c.TimeStep)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: %d iterations", ErrInvalidConfig, c.Iterations)
	}
	if c.Damping < 0 || c.Damping > 1 {
		return fmt.Errorf("%w: damping %v", ErrInvalidConfig, c.Damping)
	}
	if c.Jitter < 0 || c.PrevJitter < 0 {
		return fmt.Errorf("%w: negative jitter", ErrInvalidConfig)
	}
	return nil
}

// PinIDs resolves the pinned particle ids.
func (c Config) PinIDs() []int {
	switch {
	case c.Unpinned:
		return nil
	case len(c.Pins) > 0:
		return c.Pins
	default:
		return DefaultPinIDs(c.Cols)
	}
}

// GrabThreshold is the pointer distance within which a particle is grabbed.
func (c Config) GrabThreshold() float32 {
	return c.ParticleRadius + c.GrabSlack
}

// State owns all particle and constraint storage of a running simulation.
// The frame driver owns the State and passes it collaborators each frame.
type State struct {
	Config      Config
	Particles   *Particles
	Constraints Constraints
	Solver      Solver
	Controller  *Controller

	// Verbose adds strain and hold diagnostics to the text overlay.
	Verbose bool

	Frames      uint64
	SimDuration time.Duration
	FrameTime   time.Duration

	origin    Vec3
	rng       Rand
	clock     func() time.Time
	lastFrame time.Time
}

// New lays out a Rows x Cols cloth with particle 0 at origin and builds its
// sticks and pins.
func New(cfg Config, origin Vec3, rng Rand) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		Config:     cfg,
		Particles:  NewParticles(cfg.Rows * cfg.Cols),
		Solver:     Solver{Iterations: cfg.Iterations, ClampEachIteration: cfg.ClampEachIteration},
		Controller: NewController(cfg.GrabThreshold()),
		origin:     origin,
		rng:        rng,
		clock:      time.Now,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset re-lays the grid and rebuilds every constraint. Jitter continues
// from the current random sequence.
func (s *State) Reset() error {
	cfg := s.Config
	layout := Layout{
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		Spacing:    cfg.Spacing,
		Origin:     s.origin,
		Jitter:     cfg.Jitter,
		PrevJitter: cfg.PrevJitter,
	}
	if err := s.Particles.LayoutGrid(layout, s.rng); err != nil {
		return err
	}
	sticks, err := GridSticks(cfg.Rows, cfg.Cols, cfg.Spacing)
	if err != nil {
		return err
	}
	pins, err := NewPins(s.Particles, cfg.PinIDs())
	if err != nil {
		return err
	}
	s.Constraints = Constraints{Sticks: sticks, Pins: pins}
	if err := s.Constraints.Validate(s.Particles.Len()); err != nil {
		return err
	}
	s.Controller.Release(&s.Constraints.Drag)
	return nil
}

// Step integrates with last frame's forces, re-accumulates gravity and
// relaxes the constraints inside b.
func (s *State) Step(b Bounds) {
	Integrate(s.Particles, s.Config.TimeStep, s.Config.Damping)
	AccumulateForces(s.Particles, s.Config.Gravity)
	s.Solver.Relax(s.Particles, &s.Constraints, b)
}

// Frame runs one full simulated frame: pointer input, drag update, then Step
// within the display's current bounds.
func (s *State) Frame(d Display, ptr PointerSource) {
	now := s.clock()
	if !s.lastFrame.IsZero() {
		s.FrameTime = now.Sub(s.lastFrame)
	}
	s.lastFrame = now

	if ptr != nil {
		s.Controller.Update(&s.Constraints.Drag, s.Particles, ptr.Pointer())
	}
	w, h := d.Size()
	s.Step(Bounds{Width: w, Height: h})

	s.SimDuration = s.clock().Sub(now)
	s.Frames++
}

// SetIterations changes the number of relaxation passes per frame.
func (s *State) SetIterations(n int) {
	if n < 1 {
		n = 1
	}
	s.Config.Iterations = n
	s.Solver.Iterations = n
}

// Finite reports whether every coordinate is still a finite number.
func (s *State) Finite() bool { return s.Particles.Finite() }

// DiagnosticLines returns the overlay text, one entry per line.
func (s *State) DiagnosticLines() []string {
	lines := []string{fmt.Sprintf("%.6f", s.FrameTime.Seconds())}
	if !s.Verbose {
		return lines
	}
	mean, max := Strain(s.Particles, s.Constraints.Sticks)
	lines = append(lines,
		fmt.Sprintf("iterations %d  strain %.3f/%.3f", s.Solver.Iterations, mean, max),
		fmt.Sprintf("drag %s  skipped %d", s.Controller.State(), s.Solver.Skipped),
	)
	return lines
}

// Draw issues one segment per stick, one point per particle and one text call
// per diagnostic line.
func (s *State) Draw(c Canvas) {
	pos := s.Particles.Pos
	for _, st := range s.Constraints.Sticks {
		c.DrawSegment(pos[st.A], pos[st.B], stickWidth, stickColor)
	}
	for _, p := range pos {
		c.DrawPoint(p, s.Config.ParticleRadius, particleColor)
	}
	for i, line := range s.DiagnosticLines() {
		c.DrawText(line, textX, textY+float32(i)*textSize, textSize, textColor)
	}
}

// Render draws the current frame onto c and hands it to p.
func (s *State) Render(c Canvas, p Presenter) {
	s.Draw(c)
	if p != nil {
		p.Present()
	}
}
