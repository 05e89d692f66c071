package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(xs ...float32) *Particles {
	p := NewParticles(len(xs))
	for i, x := range xs {
		p.Pos[i] = Vec3{X: x, Y: 10}
	}
	return p
}

func TestControllerGrabsWithinThreshold(t *testing.T) {
	p := row(10, 30, 50)
	c := NewController(6)
	var d Drag

	c.Update(&d, p, PointerState{X: 33, Y: 12, Down: true})

	assert.Equal(t, Holding, c.State())
	assert.Equal(t, Drag{Active: true, Index: 1, Target: Vec3{X: 33, Y: 12}}, d)
}

func TestControllerPicksLowestID(t *testing.T) {
	p := row(20, 22, 24)
	c := NewController(6)
	var d Drag

	c.Update(&d, p, PointerState{X: 23, Y: 10, Down: true})

	assert.Equal(t, 0, d.Index)
}

func TestControllerStaysIdleWhenNothingIsNear(t *testing.T) {
	p := row(10, 30)
	c := NewController(6)
	var d Drag

	c.Update(&d, p, PointerState{X: 200, Y: 200, Down: true})
	assert.Equal(t, Idle, c.State())
	assert.False(t, d.Active)

	// still down, pointer now reaches a particle
	c.Update(&d, p, PointerState{X: 30, Y: 10, Down: true})
	assert.Equal(t, Holding, c.State())
	assert.Equal(t, 1, d.Index)
}

func TestControllerHoldIsSticky(t *testing.T) {
	p := row(10, 30)
	c := NewController(6)
	var d Drag

	c.Update(&d, p, PointerState{X: 10, Y: 10, Down: true})
	c.Update(&d, p, PointerState{X: 30, Y: 10, Down: true})
	c.Update(&d, p, PointerState{X: 400, Y: 300, Down: true})

	assert.Equal(t, Holding, c.State())
	assert.Equal(t, 0, d.Index)
	assert.Equal(t, Vec3{X: 400, Y: 300}, d.Target)
}

func TestControllerReleases(t *testing.T) {
	p := row(10)
	c := NewController(6)
	var d Drag

	c.Update(&d, p, PointerState{X: 10, Y: 10, Down: true})
	c.Update(&d, p, PointerState{X: 10, Y: 10, Down: false})

	assert.Equal(t, Idle, c.State())
	assert.False(t, d.Active)
	assert.Equal(t, "idle", c.State().String())
}

func TestPickParticleThresholdIsStrict(t *testing.T) {
	p := row(10)
	_, ok := PickParticle(p, Vec3{X: 16, Y: 10}, 6)
	assert.False(t, ok)
	id, ok := PickParticle(p, Vec3{X: 15.9, Y: 10}, 6)
	assert.True(t, ok)
	assert.Zero(t, id)
}
