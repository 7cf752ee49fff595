package systems

import (
	"github.com/automoto/geodash/arena"
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenCanvas draws arena commands onto an ebiten image.
type ebitenCanvas struct {
	screen *ebiten.Image
	op     ebiten.DrawImageOptions
}

func (c *ebitenCanvas) Draw(cmd arena.DrawCommand) {
	if cmd.Texture == nil || cmd.Src.Empty() {
		return
	}
	frame, ok := cmd.Texture.Image().SubImage(cmd.Src).(*ebiten.Image)
	if !ok {
		return
	}

	c.op.GeoM = geoM(cmd.Transform)
	c.op.ColorScale.Reset()
	if cmd.Tint != nil {
		c.op.ColorScale.ScaleWithColor(cmd.Tint)
	}
	c.screen.DrawImage(frame, &c.op)
}

// geoM copies an arena transform into ebiten's matrix layout.
func geoM(t arena.Transform) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t.A)
	g.SetElement(0, 1, t.B)
	g.SetElement(0, 2, t.TX)
	g.SetElement(1, 0, t.C)
	g.SetElement(1, 1, t.D)
	g.SetElement(1, 2, t.TY)
	return g
}
