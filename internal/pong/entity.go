package pong

import "pong/internal/geom"

// Visual is the drawable handle behind an entity. Only its pixel size matters
// to the game; drawing it is up to the Canvas that receives it.
type Visual interface {
	Width() float32
	Height() float32
}

type Entity struct {
	Visual   Visual
	Position geom.Vector
	Velocity geom.Vector
}

func NewEntity(visual Visual, position geom.Vector) Entity {
	return NewEntityWithVelocity(visual, position, geom.Vector{})
}

func NewEntityWithVelocity(visual Visual, position, velocity geom.Vector) Entity {
	return Entity{Visual: visual, Position: position, Velocity: velocity}
}

func (e *Entity) Width() float32 {
	return e.Visual.Width()
}

func (e *Entity) Height() float32 {
	return e.Visual.Height()
}

func (e *Entity) Center() geom.Vector {
	return geom.Vector{
		X: e.Position.X + e.Width()/2,
		Y: e.Position.Y + e.Height()/2,
	}
}

// Update moves the entity by one tick of its velocity.
func (e *Entity) Update() {
	e.Position = e.Position.Add(e.Velocity)
}

func (e *Entity) Bounds() geom.Rect {
	return geom.Rect{
		X:      e.Position.X,
		Y:      e.Position.Y,
		Width:  e.Width(),
		Height: e.Height(),
	}
}
