package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// AmbientData is the hue-cycling tint applied to level tiles.
type AmbientData struct {
	Hue  float64 // [0, 1)
	Tint color.RGBA
}

var Ambient = donburi.NewComponentType[AmbientData]()
