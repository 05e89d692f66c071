package sim

// Bounds is the axis-aligned world rectangle [0, Width] x [0, Height].
// z is never clamped.
type Bounds struct {
	Width, Height float32
}

// Solver relaxes particle positions towards the constraint set with a fixed
// number of Gauss-Seidel passes.
type Solver struct {
	Iterations int

	// ClampEachIteration re-applies the boundary clamp at the start of every
	// pass instead of once per frame. It changes convergence near the walls.
	ClampEachIteration bool

	// Skipped counts stick corrections dropped because both ends coincided.
	Skipped uint64
}

// ClampToBounds clamps each particle's x and y into b.
func ClampToBounds(p *Particles, b Bounds) {
	for i := range p.Pos {
		p.Pos[i] = clampPoint(p.Pos[i], b)
	}
}

func clampPoint(v Vec3, b Bounds) Vec3 {
	v.X = clampScalar(v.X, 0, b.Width)
	v.Y = clampScalar(v.Y, 0, b.Height)
	return v
}

// SolveSticks runs one correction pass over sticks in order, moving both ends
// half of the error along their separation. It returns how many sticks were
// skipped because their particles coincide.
func SolveSticks(p *Particles, sticks []Stick) int {
	skipped := 0
	for _, s := range sticks {
		p1 := p.Pos[s.A]
		p2 := p.Pos[s.B]

		delta := p2.Sub(p1)
		deltaLen := delta.Length()
		if deltaLen == 0 {
			skipped++
			continue
		}
		diff := (deltaLen - s.Rest) / deltaLen
		corr := delta.Scale(0.5 * diff)

		p.Pos[s.A].Inc(corr)
		p.Pos[s.B].Dec(corr)
	}
	return skipped
}

// EnforcePins moves every pinned particle onto its pin point.
func EnforcePins(p *Particles, pins []Pin) {
	for _, pin := range pins {
		p.Pos[pin.Index] = pin.Point
	}
}

// EnforceDrag moves the dragged particle onto the pointer target.
func EnforceDrag(p *Particles, d Drag) {
	if !d.Active || !p.valid(d.Index) {
		return
	}
	p.Pos[d.Index] = d.Target
}

// Relax clamps to b and then runs the configured number of passes of sticks,
// pins and drag, in that order.
func (s *Solver) Relax(p *Particles, c *Constraints, b Bounds) {
	iterations := s.Iterations
	if iterations < 1 {
		iterations = 1
	}
	if !s.ClampEachIteration {
		ClampToBounds(p, b)
	}
	for i := 0; i < iterations; i++ {
		if s.ClampEachIteration {
			ClampToBounds(p, b)
		}
		s.Skipped += uint64(SolveSticks(p, c.Sticks))
		EnforcePins(p, c.Pins)
		EnforceDrag(p, c.Drag)
	}
}

// Strain returns the mean and maximum relative stretch |len-rest|/rest over
// all sticks.
func Strain(p *Particles, sticks []Stick) (mean, max float32) {
	if len(sticks) == 0 {
		return 0, 0
	}
	var sum float32
	for _, s := range sticks {
		l := Distance(p.Pos[s.A], p.Pos[s.B])
		e := (l - s.Rest) / s.Rest
		if e < 0 {
			e = -e
		}
		sum += e
		if e > max {
			max = e
		}
	}
	return sum / float32(len(sticks)), max
}
