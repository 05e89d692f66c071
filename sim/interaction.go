package sim

// HoldState is the drag state machine: Idle or Holding.
type HoldState uint8

const (
	Idle HoldState = iota
	Holding
)

func (h HoldState) String() string {
	if h == Holding {
		return "holding"
	}
	return "idle"
}

// Controller turns pointer state into the drag constraint. While the button
// stays down the held particle never changes; only the target follows the
// pointer.
type Controller struct {
	Threshold float32
	state     HoldState
}

// NewController returns an idle controller that grabs particles closer than
// threshold to the pointer.
func NewController(threshold float32) *Controller {
	return &Controller{Threshold: threshold}
}

// State returns the current hold state.
func (c *Controller) State() HoldState { return c.state }

// Update applies one frame of pointer input to drag.
func (c *Controller) Update(drag *Drag, p *Particles, ptr PointerState) {
	if !ptr.Down {
		c.state = Idle
		drag.Active = false
		return
	}

	target := Vec3{X: ptr.X, Y: ptr.Y}
	if c.state == Holding {
		drag.Target = target
		return
	}

	id, ok := PickParticle(p, target, c.Threshold)
	if !ok {
		return
	}
	c.state = Holding
	drag.Active = true
	drag.Index = id
	drag.Target = target
}

// Release drops any held particle.
func (c *Controller) Release(drag *Drag) {
	c.state = Idle
	drag.Active = false
}

// PickParticle returns the lowest particle id strictly closer than threshold
// to at.
func PickParticle(p *Particles, at Vec3, threshold float32) (int, bool) {
	for i := range p.Pos {
		if Distance(at, p.Pos[i]) < threshold {
			return i, true
		}
	}
	return 0, false
}
