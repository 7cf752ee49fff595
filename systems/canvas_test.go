package systems

import (
	"testing"

	"github.com/automoto/geodash/arena"
	"github.com/yohamta/donburi/features/math"
)

func TestGeoMMatchesTransform(t *testing.T) {
	tests := []struct {
		name string
		tr   arena.Transform
	}{
		{"identity", arena.Identity()},
		{"translated", arena.Identity().Translate(54, 30)},
		{"transposed", arena.Transform{B: 1, C: 1, TX: 10}},
		{"mirrored", arena.Transform{A: -1, D: 1, TX: 64, TY: 8}},
	}
	points := [][2]float64{{0, 0}, {64, 0}, {0, 64}, {13, 37}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := geoM(tt.tr)
			for _, p := range points {
				gx, gy := g.Apply(p[0], p[1])
				want := tt.tr.Apply(vec(p[0], p[1]))
				if gx != want.X || gy != want.Y {
					t.Errorf("(%v,%v) -> (%v,%v), want (%v,%v)", p[0], p[1], gx, gy, want.X, want.Y)
				}
			}
		})
	}
}

func vec(x, y float64) math.Vec2 {
	return math.Vec2{X: x, Y: y}
}
