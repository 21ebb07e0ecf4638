package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAdd(t *testing.T) {
	v := Vector{X: 1.5, Y: -2}.Add(Vector{X: -0.5, Y: 4})
	assert.Equal(t, Vector{X: 1, Y: 2}, v)
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"left of", Rect{X: -20, Y: 0, Width: 5, Height: 5}, false},
		{"negative coords overlapping", Rect{X: -5, Y: -5, Width: 6, Height: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "intersection should be symmetric")
		})
	}
}

func TestSignum(t *testing.T) {
	assert.Equal(t, float32(1), Signum(float32(5)))
	assert.Equal(t, float32(-1), Signum(float32(-0.25)))
	assert.Equal(t, float32(1), Signum(float32(0)))
	assert.Equal(t, -1.0, Signum(math.Copysign(0, -1)))
	assert.True(t, math.IsNaN(Signum(math.NaN())))
}
