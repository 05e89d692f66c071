package sim

import "fmt"

// Stick is a structural distance constraint between particles A and B.
// The order of A and B only decides the sign of the correction.
type Stick struct {
	A, B int
	Rest float32
}

// Pin fixes particle Index at Point.
type Pin struct {
	Index int
	Point Vec3
}

// Drag is the transient pin driven by the pointer. It is applied after the
// pins, so it wins if both ever target the same particle.
type Drag struct {
	Active bool
	Index  int
	Target Vec3
}

// Constraints groups every constraint the solver enforces.
type Constraints struct {
	Sticks []Stick
	Pins   []Pin
	Drag   Drag
}

// StickCount returns the number of horizontal and vertical edges of a
// rows x cols grid.
func StickCount(rows, cols int) int {
	return (rows-1)*cols + (cols-1)*rows
}

// GridSticks connects every particle of a rows x cols grid to its right and
// lower neighbour. Horizontal edges come first, row by row, then vertical
// edges column by column. Every stick rests at the nominal spacing rather
// than at the jittered distance.
func GridSticks(rows, cols int, rest float32) ([]Stick, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	if rest <= 0 {
		return nil, fmt.Errorf("%w: rest length %v", ErrInvalidGrid, rest)
	}

	sticks := make([]Stick, 0, StickCount(rows, cols))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			id := r*cols + c
			sticks = append(sticks, Stick{A: id, B: id + 1, Rest: rest})
		}
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows-1; r++ {
			id := r*cols + c
			sticks = append(sticks, Stick{A: id, B: id + cols, Rest: rest})
		}
	}
	return sticks, nil
}

// DefaultPinIDs returns the three anchors of the top row: first particle,
// horizontal midpoint and last particle.
func DefaultPinIDs(cols int) []int {
	return []int{0, cols / 2, cols - 1}
}

// NewPins pins each id at its current position.
func NewPins(p *Particles, ids []int) ([]Pin, error) {
	pins := make([]Pin, 0, len(ids))
	for _, id := range ids {
		if !p.valid(id) {
			return nil, fmt.Errorf("%w: pin %d of %d", ErrParticleOutOfRange, id, p.Len())
		}
		pins = append(pins, Pin{Index: id, Point: p.Pos[id]})
	}
	return pins, nil
}

// Validate checks every constraint against a store of n particles.
func (c *Constraints) Validate(n int) error {
	for i, s := range c.Sticks {
		if s.A < 0 || s.A >= n || s.B < 0 || s.B >= n {
			return fmt.Errorf("%w: stick %d (%d,%d) of %d", ErrParticleOutOfRange, i, s.A, s.B, n)
		}
		if s.A == s.B {
			return fmt.Errorf("%w: stick %d joins particle %d to itself", ErrInvalidGrid, i, s.A)
		}
		if s.Rest <= 0 {
			return fmt.Errorf("%w: stick %d rest length %v", ErrInvalidGrid, i, s.Rest)
		}
	}
	for i, pin := range c.Pins {
		if pin.Index < 0 || pin.Index >= n {
			return fmt.Errorf("%w: pin %d targets %d of %d", ErrParticleOutOfRange, i, pin.Index, n)
		}
	}
	return nil
}
