package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Vector struct {
	X float32
	Y float32
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned box with its top left corner at X, Y.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

func (r Rect) Right() float32 {
	return r.X + r.Width
}

func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// Intersects reports whether r and o overlap. Boxes that only share an edge
// do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// Signum returns 1 for positive values and +0, -1 for negative values and -0.
// NaN is passed through.
func Signum[T constraints.Float](v T) T {
	if math.IsNaN(float64(v)) {
		return v
	}
	if math.Signbit(float64(v)) {
		return -1
	}
	return 1
}
