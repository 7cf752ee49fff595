package gamemath

import "testing"

// orient is the inverse of RotateUp for a square tile: it places an
// apex-up relative shape into the world for a spike pointing o.
func orient(shape Rect, tile Rect, o Orientation) Rect {
	c := tile.Center()
	rx, ry := shape.X-c.X, shape.Y-c.Y
	switch o {
	case OrientDown:
		return Rect{X: c.X + rx, Y: c.Y - ry - shape.H, W: shape.W, H: shape.H}
	case OrientLeft:
		return Rect{X: c.X + ry, Y: c.Y + rx, W: shape.H, H: shape.W}
	case OrientRight:
		return Rect{X: c.X - ry - shape.H, Y: c.Y + rx, W: shape.H, H: shape.W}
	default:
		return shape
	}
}

var allOrientations = []Orientation{OrientUp, OrientDown, OrientLeft, OrientRight}

func TestOrientationFromFrame(t *testing.T) {
	tests := []struct {
		frame int
		want  Orientation
	}{
		{0, OrientUp},
		{1, OrientDown},
		{2, OrientLeft},
		{3, OrientRight},
		{7, OrientRight},
	}
	for _, tt := range tests {
		if got := OrientationFromFrame(tt.frame); got != tt.want {
			t.Errorf("OrientationFromFrame(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestRotateUpRoundTrip(t *testing.T) {
	tile := NewRect(64, 128, 64, 64)
	shape := NewRect(70, 150, 12, 30)
	for _, o := range allOrientations {
		world := orient(shape, tile, o)
		if got := RotateUp(world, tile.Center(), o); got != shape {
			t.Errorf("%v: RotateUp(orient(s)) = %+v, want %+v", o, got, shape)
		}
	}
}

func TestSpikeCenterInsideAllOrientations(t *testing.T) {
	tile := NewRect(0, 0, 64, 64)
	shapes := []Rect{
		NewRect(28, 40, 8, 8),   // center column, low
		NewRect(10, 50, 6, 6),   // near the left base
		NewRect(20, 20, 32, 32), // player sized
		NewRect(0, 0, 10, 10),   // top-left of the box
	}

	for _, s := range shapes {
		for _, o := range allOrientations {
			world := orient(s, tile, o)
			if !SpikeCollides(tile, o, world) {
				t.Errorf("%v spike missed shape %+v (world %+v)", o, s, world)
			}
		}
	}
}

func TestSpikeMissesOutside(t *testing.T) {
	tile := NewRect(0, 0, 64, 64)
	outside := []Rect{
		NewRect(-40, -40, 32, 32),
		NewRect(64, 0, 32, 32), // touching edge only
		NewRect(100, 100, 8, 8),
	}
	for _, s := range outside {
		for _, o := range allOrientations {
			if SpikeCollides(tile, o, orient(s, tile, o)) {
				t.Errorf("%v spike hit outside shape %+v", o, s)
			}
		}
	}
}

func TestSpikeFlankCorner(t *testing.T) {
	tile := NewRect(0, 0, 64, 64)
	tests := []struct {
		name  string
		shape Rect
		want  bool
	}{
		// Bottom-right corner at (4,64): 28 px off axis, 64 px below apex.
		{"left of flank", NewRect(-20, 40, 24, 24), false},
		// Bottom-right corner at (14,64): 18 px off axis.
		{"across flank", NewRect(-10, 40, 24, 24), true},
		// Mirror image from the right.
		{"right of flank", NewRect(60, 40, 24, 24), false},
		{"across right flank", NewRect(50, 40, 24, 24), true},
		// Coming down onto the apex.
		{"apex", NewRect(24, -20, 16, 24), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, o := range allOrientations {
				if got := SpikeCollides(tile, o, orient(tt.shape, tile, o)); got != tt.want {
					t.Errorf("%v: SpikeCollides = %v, want %v", o, got, tt.want)
				}
			}
		})
	}
}

func TestSpikeBoundsSmall(t *testing.T) {
	tile := NewRect(0, 0, 64, 64)
	tests := []struct {
		o    Orientation
		want Rect
	}{
		{OrientUp, NewRect(0, 32, 64, 32)},
		{OrientDown, NewRect(0, 0, 64, 32)},
		{OrientLeft, NewRect(32, 0, 32, 64)},
		{OrientRight, NewRect(0, 0, 32, 64)},
	}
	for _, tt := range tests {
		if got := SpikeBounds(tile, tt.o, true); got != tt.want {
			t.Errorf("SpikeBounds(%v) = %+v, want %+v", tt.o, got, tt.want)
		}
		if got := SpikeBounds(tile, tt.o, false); got != tile {
			t.Errorf("tall SpikeBounds(%v) = %+v, want tile", tt.o, got)
		}
	}
}

func TestSmallSpikeUpperHalfIsAir(t *testing.T) {
	tile := NewRect(0, 0, 64, 64)
	b := SpikeBounds(tile, OrientUp, true)
	if SpikeCollides(b, OrientUp, NewRect(24, 0, 16, 24)) {
		t.Error("small spike hit a shape in the empty upper half")
	}
	if !SpikeCollides(b, OrientUp, NewRect(24, 40, 16, 16)) {
		t.Error("small spike missed a shape centered in its box")
	}
}
