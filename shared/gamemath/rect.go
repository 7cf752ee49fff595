package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle in screen orientation (y grows down).
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() dmath.Vec2 {
	return dmath.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects is true when the overlap has positive area. Touching edges do
// not count.
func (r Rect) Intersects(o Rect) bool {
	left := max(r.X, o.X)
	right := min(r.Right(), o.Right())
	top := max(r.Y, o.Y)
	bottom := min(r.Bottom(), o.Bottom())
	return left < right && top < bottom
}

// Contains uses half-open bounds: the right and bottom edges are outside.
func (r Rect) Contains(p dmath.Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsClosed treats every edge as inside.
func (r Rect) ContainsClosed(p dmath.Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset grows the rectangle by d on every side; negative d shrinks it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Corners returns top-left, top-right, bottom-right, bottom-left.
func (r Rect) Corners() [4]dmath.Vec2 {
	return [4]dmath.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}
