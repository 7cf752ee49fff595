package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Orientation is the direction a spike's apex points.
type Orientation int

const (
	OrientUp Orientation = iota
	OrientDown
	OrientLeft
	OrientRight
)

func (o Orientation) String() string {
	switch o {
	case OrientUp:
		return "up"
	case OrientDown:
		return "down"
	case OrientLeft:
		return "left"
	default:
		return "right"
	}
}

// OrientationFromFrame maps a spike sheet frame to its apex direction.
// Frames past 2 all point right.
func OrientationFromFrame(frame int) Orientation {
	switch frame {
	case 0:
		return OrientUp
	case 1:
		return OrientDown
	case 2:
		return OrientLeft
	default:
		return OrientRight
	}
}

// tan(22.5°): a corner is under a spike flank when its bearing from the
// apex is within 22.5° of the spike axis.
const spikeFlankSlope = 0.41421356237309503

// SpikeBounds returns the box a spike occupies inside its tile. Small spikes
// fill the half of the tile on their base side.
func SpikeBounds(tile Rect, o Orientation, small bool) Rect {
	if !small {
		return tile
	}
	switch o {
	case OrientDown:
		return Rect{X: tile.X, Y: tile.Y, W: tile.W, H: tile.H / 2}
	case OrientLeft:
		return Rect{X: tile.X + tile.W/2, Y: tile.Y, W: tile.W / 2, H: tile.H}
	case OrientRight:
		return Rect{X: tile.X, Y: tile.Y, W: tile.W / 2, H: tile.H}
	default:
		return Rect{X: tile.X, Y: tile.Y + tile.H/2, W: tile.W, H: tile.H / 2}
	}
}

// SpikeTriangle is the exact triangle inscribed in bounds with its apex on
// the edge o points at.
func SpikeTriangle(b Rect, o Orientation) (Triangle, error) {
	cx, cy := b.X+b.W/2, b.Y+b.H/2
	switch o {
	case OrientDown:
		return NewTriangle(dmath.Vec2{X: b.X, Y: b.Y}, dmath.Vec2{X: b.Right(), Y: b.Y}, dmath.Vec2{X: cx, Y: b.Bottom()})
	case OrientLeft:
		return NewTriangle(dmath.Vec2{X: b.Right(), Y: b.Y}, dmath.Vec2{X: b.Right(), Y: b.Bottom()}, dmath.Vec2{X: b.X, Y: cy})
	case OrientRight:
		return NewTriangle(dmath.Vec2{X: b.X, Y: b.Y}, dmath.Vec2{X: b.X, Y: b.Bottom()}, dmath.Vec2{X: b.Right(), Y: cy})
	default:
		return NewTriangle(dmath.Vec2{X: b.X, Y: b.Bottom()}, dmath.Vec2{X: b.Right(), Y: b.Bottom()}, dmath.Vec2{X: cx, Y: b.Y})
	}
}

// uprightBounds is bounds seen from the apex-up frame about its own center.
func uprightBounds(b Rect, o Orientation) Rect {
	if o != OrientLeft && o != OrientRight {
		return b
	}
	c := b.Center()
	return Rect{X: c.X - b.H/2, Y: c.Y - b.W/2, W: b.H, H: b.W}
}

// RotateUp maps shape into the frame where a spike pointing o points up,
// rotating about center. Left and right swap the rectangle's dimensions.
func RotateUp(shape Rect, center dmath.Vec2, o Orientation) Rect {
	rx, ry := shape.X-center.X, shape.Y-center.Y
	switch o {
	case OrientDown:
		return Rect{X: center.X + rx, Y: center.Y - ry - shape.H, W: shape.W, H: shape.H}
	case OrientLeft:
		return Rect{X: center.X + ry, Y: center.Y + rx, W: shape.H, H: shape.W}
	case OrientRight:
		return Rect{X: center.X + ry, Y: center.Y - rx - shape.W, W: shape.H, H: shape.W}
	default:
		return shape
	}
}

// SpikeCollides is the cheap spike test. The query is turned into the
// apex-up frame and accepted when its center is inside the spike box, when
// it covers the apex, or when a bottom corner has crossed a flank.
func SpikeCollides(bounds Rect, o Orientation, shape Rect) bool {
	if !bounds.Intersects(shape) {
		return false
	}

	up := uprightBounds(bounds, o)
	r := RotateUp(shape, bounds.Center(), o)

	if up.ContainsClosed(r.Center()) {
		return true
	}

	mid := up.X + up.W/2
	apex := dmath.Vec2{X: mid, Y: up.Y}
	if r.ContainsClosed(apex) {
		return true
	}

	br := dmath.Vec2{X: r.Right(), Y: r.Bottom()}
	bl := dmath.Vec2{X: r.X, Y: r.Bottom()}
	inBR, inBL := up.ContainsClosed(br), up.ContainsClosed(bl)

	switch {
	case inBR && inBL:
		return (bl.X <= mid && br.X >= mid) || underFlank(br, apex) || underFlank(bl, apex)
	case inBR:
		// entering from the left
		if br.X >= mid {
			return true
		}
		return underFlank(br, apex)
	case inBL:
		if bl.X <= mid {
			return true
		}
		return underFlank(bl, apex)
	}
	return false
}

func underFlank(c, apex dmath.Vec2) bool {
	dy := c.Y - apex.Y
	if dy <= 0 {
		return false
	}
	dx := c.X - apex.X
	if dx < 0 {
		dx = -dx
	}
	return dx <= dy*spikeFlankSlope
}
