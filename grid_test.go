package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampCoord(t *testing.T) {
	assert.Equal(t, 0, clampCoord(-3, 0, 9))
	assert.Equal(t, 9, clampCoord(12, 0, 9))
	assert.Equal(t, 4, clampCoord(4, 0, 9))
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name string
		a, b cell
		want []cell
	}{
		{"point", cell{2, 2}, cell{2, 2}, []cell{{2, 2}}},
		{"horizontal", cell{0, 1}, cell{3, 1}, []cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"diagonal back", cell{2, 2}, cell{0, 0}, []cell{{2, 2}, {1, 1}, {0, 0}}},
		{"clipped", cell{-1, 0}, cell{1, 0}, []cell{{0, 0}, {1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []cell
			drawLine(tt.a, tt.b, 10, 10, func(x, y int) {
				got = append(got, cell{x, y})
			})
			assert.Equal(t, tt.want, got)
		})
	}
}
