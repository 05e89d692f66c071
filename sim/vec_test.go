package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3ArithmeticReturnsNewValues(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, Vec3{1, 2, 3}, a, "operands must not be modified")
	assert.Equal(t, Vec3{4, 5, 6}, b)
}

func TestVec3InPlace(t *testing.T) {
	v := Vec3{1, 1, 1}
	v.Inc(Vec3{1, 2, 3})
	assert.Equal(t, Vec3{2, 3, 4}, v)
	v.Dec(Vec3{2, 3, 4})
	assert.Equal(t, Vec3{}, v)
}

func TestVec3LengthUsesAllAxes(t *testing.T) {
	assert.InDelta(t, 5, Vec3{3, 4, 0}.Length(), 1e-6)
	assert.InDelta(t, 13, Vec3{3, 4, 12}.Length(), 1e-5)
	assert.InDelta(t, 13, Distance(Vec3{3, 4, 12}, Vec3{}), 1e-5)
	assert.Zero(t, Vec3{}.Length())
}

func TestVec3Clamp(t *testing.T) {
	min, max := Vec3{0, 0, 0}, Vec3{10, 10, 10}
	assert.Equal(t, Vec3{0, 10, 5}, Vec3{-1, 11, 5}.Clamp(min, max))
}

func TestVec3IsFinite(t *testing.T) {
	assert.True(t, Vec3{1, 2, 3}.IsFinite())
	inf := float32(1)
	for i := 0; i < 200; i++ {
		inf *= 10
	}
	assert.False(t, Vec3{inf, 0, 0}.IsFinite())
	zero := float32(0)
	assert.False(t, Vec3{0, zero / zero, 0}.IsFinite())
}
