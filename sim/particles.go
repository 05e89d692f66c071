package sim

import "fmt"

// Particles stores the cloth's point masses as parallel slices indexed by
// particle id. Mass is implicitly 1 for every particle. The store is sized
// once and never grows.
type Particles struct {
	Pos   []Vec3
	Prev  []Vec3
	Force []Vec3
}

// NewParticles allocates storage for n particles at the origin.
func NewParticles(n int) *Particles {
	return &Particles{
		Pos:   make([]Vec3, n),
		Prev:  make([]Vec3, n),
		Force: make([]Vec3, n),
	}
}

// Len returns the fixed particle count.
func (p *Particles) Len() int { return len(p.Pos) }

// valid reports whether id addresses a particle.
func (p *Particles) valid(id int) bool {
	return id >= 0 && id < len(p.Pos)
}

// Layout describes the initial grid placement of the particles.
type Layout struct {
	Rows, Cols int
	Spacing    float32
	Origin     Vec3    // position of particle 0 before jitter
	Jitter     float32 // half-width of the uniform jitter on x and y
	PrevJitter float32 // extra jitter applied to Prev only; 0 keeps Prev == Pos
}

// LayoutGrid places particle id = row*Cols+col at Origin + (col, row)*Spacing
// with independent uniform jitter on x and y. Prev starts equal to Pos, or
// offset by PrevJitter, and forces are cleared.
func (p *Particles) LayoutGrid(l Layout, rng Rand) error {
	if l.Rows*l.Cols != p.Len() {
		return fmt.Errorf("%w: %dx%d grid for %d particles", ErrInvalidGrid, l.Rows, l.Cols, p.Len())
	}
	for i := range p.Pos {
		row := float32(i / l.Cols)
		col := float32(i % l.Cols)

		pos := l.Origin
		pos.X += col*l.Spacing + jitter(rng, l.Jitter)
		pos.Y += row*l.Spacing + jitter(rng, l.Jitter)
		p.Pos[i] = pos

		prev := pos
		if l.PrevJitter > 0 {
			prev.X += jitter(rng, l.PrevJitter)
			prev.Y += jitter(rng, l.PrevJitter)
		}
		p.Prev[i] = prev
		p.Force[i] = Vec3{}
	}
	return nil
}

func jitter(rng Rand, amount float32) float32 {
	if amount <= 0 || rng == nil {
		return 0
	}
	return rng.Uniform(-amount, amount)
}

// Finite reports whether every particle position is finite.
func (p *Particles) Finite() bool {
	for i := range p.Pos {
		if !p.Pos[i].IsFinite() || !p.Prev[i].IsFinite() {
			return false
		}
	}
	return true
}
