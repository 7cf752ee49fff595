package arena

import (
	"image"
	"image/color"

	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/shared/leveldata"
	dmath "github.com/yohamta/donburi/features/math"
)

// Canvas receives the draw commands of a render pass.
type Canvas interface {
	Draw(cmd DrawCommand)
}

type DrawCommand struct {
	Texture   *assets.Texture
	Src       image.Rectangle
	Transform Transform
	Tint      color.Color
}

// Transform is a 2x3 affine matrix from frame-local pixels to the screen:
//
//	x' = A*x + B*y + TX
//	y' = C*x + D*y + TY
type Transform struct {
	A, B, C, D float64
	TX, TY     float64
}

func Identity() Transform {
	return Transform{A: 1, D: 1}
}

func (t Transform) Translate(dx, dy float64) Transform {
	t.TX += dx
	t.TY += dy
	return t
}

func (t Transform) Apply(p dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// flipTransform maps a frame of the given size onto the same tile cell with
// Tiled's flip flags applied: the diagonal flip first, then horizontal,
// then vertical.
func flipTransform(f leveldata.Flips, size dmath.Vec2) Transform {
	t := Identity()
	w, h := size.X, size.Y
	if f.Diagonal {
		t = Transform{B: 1, C: 1}
		w, h = h, w
	}
	if f.Horizontal {
		t.A, t.B, t.TX = -t.A, -t.B, w-t.TX
	}
	if f.Vertical {
		t.C, t.D, t.TY = -t.C, -t.D, h-t.TY
	}
	return t
}
