package gamemath

import (
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"
)

type ColliderKind int

const (
	ColliderNone ColliderKind = iota
	ColliderBox
	ColliderSpike
	ColliderTriangle
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderBox:
		return "box"
	case ColliderSpike:
		return "spike"
	case ColliderTriangle:
		return "triangle"
	default:
		return "none"
	}
}

// Collider is the exact shape of a world tile. Only the fields of its Kind
// are meaningful.
type Collider struct {
	Kind        ColliderKind
	Box         Rect // box bounds, or the spike's bounding box
	Orientation Orientation
	Triangle    Triangle
}

func NewBoxCollider(r Rect) (Collider, error) {
	if r.Empty() {
		return Collider{}, fmt.Errorf("%w: box %vx%v", ErrDegenerate, r.W, r.H)
	}
	return Collider{Kind: ColliderBox, Box: r}, nil
}

func NewSpikeCollider(bounds Rect, o Orientation) (Collider, error) {
	if bounds.Empty() {
		return Collider{}, fmt.Errorf("%w: spike %vx%v", ErrDegenerate, bounds.W, bounds.H)
	}
	return Collider{Kind: ColliderSpike, Box: bounds, Orientation: o}, nil
}

func NewTriangleCollider(t Triangle) Collider {
	return Collider{Kind: ColliderTriangle, Triangle: t, Box: t.Bounds()}
}

// Collides dispatches the exact test for the collider's kind. A zero
// Collider never collides.
func (c Collider) Collides(shape Rect) bool {
	switch c.Kind {
	case ColliderBox:
		return c.Box.Intersects(shape)
	case ColliderSpike:
		return SpikeCollides(c.Box, c.Orientation, shape)
	case ColliderTriangle:
		if !c.Box.Intersects(shape) {
			return false
		}
		return c.Triangle.CollidesRect(shape)
	}
	return false
}

// Bounds is the axis-aligned box around the collider.
func (c Collider) Bounds() Rect {
	return c.Box
}

// SetPosition moves the collider so its bounding box starts at origin.
func (c *Collider) SetPosition(origin dmath.Vec2) {
	dx, dy := origin.X-c.Box.X, origin.Y-c.Box.Y
	c.Box = c.Box.Translate(dx, dy)
	if c.Kind == ColliderTriangle {
		c.Triangle.SetPosition(dmath.Vec2{X: c.Triangle.Left.X + dx, Y: c.Triangle.Top.Y + dy})
	}
}
