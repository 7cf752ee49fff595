package gamemath

import (
	"errors"
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

var ErrDegenerate = errors.New("degenerate collider")

// Triangle is a collision triangle described by the two ends of its base
// (Left, Right) and its apex (Top). Containment is tested with the angular
// wedge each base vertex spans toward the other two vertices.
type Triangle struct {
	Left, Right, Top dmath.Vec2

	leftFrom, leftSweep   float64
	rightFrom, rightSweep float64
}

// NewTriangle fails with ErrDegenerate when the vertices are collinear.
func NewTriangle(left, right, top dmath.Vec2) (Triangle, error) {
	cross := (right.X-left.X)*(top.Y-left.Y) - (right.Y-left.Y)*(top.X-left.X)
	if cross == 0 {
		return Triangle{}, fmt.Errorf("%w: triangle %v %v %v", ErrDegenerate, left, right, top)
	}

	t := Triangle{Left: left, Right: right, Top: top}
	t.leftFrom = bearing(left, right)
	t.leftSweep = wrapAngle(bearing(left, top) - t.leftFrom)
	t.rightFrom = bearing(right, left)
	t.rightSweep = wrapAngle(bearing(right, top) - t.rightFrom)
	return t, nil
}

func bearing(from, to dmath.Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// withinSweep reports whether angle lies strictly between from and
// from+sweep, going the short way round.
func withinSweep(angle, from, sweep float64) bool {
	d := wrapAngle(angle - from)
	if sweep > 0 {
		return d > 0 && d < sweep
	}
	return d < 0 && d > sweep
}

// Contains is strict: points on an edge are outside. A point sitting on a
// base vertex has no bearing and is reported outside.
func (t Triangle) Contains(p dmath.Vec2) bool {
	if p == t.Left || p == t.Right {
		return false
	}
	return withinSweep(bearing(t.Left, p), t.leftFrom, t.leftSweep) &&
		withinSweep(bearing(t.Right, p), t.rightFrom, t.rightSweep)
}

// CollidesRect is true when a corner of r is inside the triangle or a
// vertex of the triangle is inside r. Thin overlaps where neither happens
// are missed.
func (t Triangle) CollidesRect(r Rect) bool {
	for _, c := range r.Corners() {
		if t.Contains(c) {
			return true
		}
	}
	return r.Contains(t.Left) || r.Contains(t.Right) || r.Contains(t.Top)
}

// SetPosition moves the triangle so that (Left.X, Top.Y) lands on origin.
func (t *Triangle) SetPosition(origin dmath.Vec2) {
	dx := origin.X - t.Left.X
	dy := origin.Y - t.Top.Y
	t.Left = dmath.Vec2{X: t.Left.X + dx, Y: t.Left.Y + dy}
	t.Right = dmath.Vec2{X: t.Right.X + dx, Y: t.Right.Y + dy}
	t.Top = dmath.Vec2{X: t.Top.X + dx, Y: t.Top.Y + dy}
}

// Bounds is the smallest rectangle holding all three vertices.
func (t Triangle) Bounds() Rect {
	minX := min(t.Left.X, t.Right.X, t.Top.X)
	minY := min(t.Left.Y, t.Right.Y, t.Top.Y)
	maxX := max(t.Left.X, t.Right.X, t.Top.X)
	maxY := max(t.Left.Y, t.Right.Y, t.Top.Y)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Points returns the vertices in drawing order.
func (t Triangle) Points() [3]dmath.Vec2 {
	return [3]dmath.Vec2{t.Left, t.Top, t.Right}
}
