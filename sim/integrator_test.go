package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrateStationaryParticle(t *testing.T) {
	p := NewParticles(1)
	p.Pos[0] = Vec3{10, 20, 0}
	p.Prev[0] = p.Pos[0]

	Integrate(p, 0.016, 1)

	assert.Equal(t, Vec3{10, 20, 0}, p.Pos[0])
	assert.Equal(t, Vec3{10, 20, 0}, p.Prev[0])
}

func TestIntegrateCarriesImplicitVelocity(t *testing.T) {
	p := NewParticles(1)
	p.Pos[0] = Vec3{10, 0, 0}
	p.Prev[0] = Vec3{9, 0, 0}

	Integrate(p, 0.5, 1)

	assert.Equal(t, Vec3{11, 0, 0}, p.Pos[0])
	assert.Equal(t, Vec3{10, 0, 0}, p.Prev[0])
}

func TestIntegrateAppliesForceTimesDtSquared(t *testing.T) {
	p := NewParticles(1)
	p.Force[0] = Vec3{0, 8, 0}

	Integrate(p, 0.5, 1)

	assert.InDelta(t, 2, p.Pos[0].Y, 1e-6)
}

func TestIntegrateDamping(t *testing.T) {
	p := NewParticles(1)
	p.Pos[0] = Vec3{10, 0, 0}
	p.Prev[0] = Vec3{8, 0, 0}

	Integrate(p, 1, 0.5)

	assert.InDelta(t, 11, p.Pos[0].X, 1e-6)
}

func TestAccumulateForcesResets(t *testing.T) {
	p := NewParticles(3)
	p.Force[1] = Vec3{100, 100, 100}
	g := Vec3{Y: 98.2}

	AccumulateForces(p, g)
	AccumulateForces(p, g)

	for i := range p.Force {
		assert.Equal(t, g, p.Force[i], "force %d", i)
	}
}
