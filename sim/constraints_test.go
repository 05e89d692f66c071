package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridSticksCountAndOrder(t *testing.T) {
	sticks, err := GridSticks(3, 4, 20)
	require.NoError(t, err)
	require.Len(t, sticks, StickCount(3, 4))
	assert.Equal(t, (3-1)*4+(4-1)*3, len(sticks))

	// horizontal edges first, row by row
	assert.Equal(t, Stick{A: 0, B: 1, Rest: 20}, sticks[0])
	assert.Equal(t, Stick{A: 2, B: 3, Rest: 20}, sticks[2])
	assert.Equal(t, Stick{A: 4, B: 5, Rest: 20}, sticks[3])
	// then vertical edges column by column
	assert.Equal(t, Stick{A: 0, B: 4, Rest: 20}, sticks[9])
	assert.Equal(t, Stick{A: 4, B: 8, Rest: 20}, sticks[10])
	assert.Equal(t, Stick{A: 1, B: 5, Rest: 20}, sticks[11])
}

func TestGridSticksSquare(t *testing.T) {
	sticks, err := GridSticks(2, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, []Stick{
		{A: 0, B: 1, Rest: 20},
		{A: 2, B: 3, Rest: 20},
		{A: 0, B: 2, Rest: 20},
		{A: 1, B: 3, Rest: 20},
	}, sticks)
}

func TestGridSticksSingleParticle(t *testing.T) {
	sticks, err := GridSticks(1, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, sticks)
}

func TestGridSticksRejectsBadInput(t *testing.T) {
	_, err := GridSticks(0, 4, 20)
	assert.ErrorIs(t, err, ErrInvalidGrid)
	_, err = GridSticks(2, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestNewPinsUseCurrentPositions(t *testing.T) {
	p := NewParticles(10)
	for i := range p.Pos {
		p.Pos[i] = Vec3{X: float32(i) + 0.25, Y: 7}
	}
	pins, err := NewPins(p, DefaultPinIDs(10))
	require.NoError(t, err)
	assert.Equal(t, []Pin{
		{Index: 0, Point: Vec3{X: 0.25, Y: 7}},
		{Index: 5, Point: Vec3{X: 5.25, Y: 7}},
		{Index: 9, Point: Vec3{X: 9.25, Y: 7}},
	}, pins)

	_, err = NewPins(p, []int{10})
	assert.ErrorIs(t, err, ErrParticleOutOfRange)
}

func TestConstraintsValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Constraints
		want error
	}{
		{"ok", Constraints{Sticks: []Stick{{0, 1, 1}}, Pins: []Pin{{Index: 1}}}, nil},
		{"stick out of range", Constraints{Sticks: []Stick{{0, 4, 1}}}, ErrParticleOutOfRange},
		{"negative id", Constraints{Sticks: []Stick{{-1, 0, 1}}}, ErrParticleOutOfRange},
		{"self stick", Constraints{Sticks: []Stick{{2, 2, 1}}}, ErrInvalidGrid},
		{"zero rest", Constraints{Sticks: []Stick{{0, 1, 0}}}, ErrInvalidGrid},
		{"pin out of range", Constraints{Pins: []Pin{{Index: 4}}}, ErrParticleOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate(4)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
