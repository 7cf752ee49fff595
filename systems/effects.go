package systems

import (
	"math"

	"github.com/automoto/geodash/components"
	"github.com/automoto/geodash/config"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the ambient hue cycle of every level.
func UpdateEffects(ecs *ecs.ECS) {
	dt := frameDelta()
	components.Ambient.Each(ecs.World, func(e *donburi.Entry) {
		stepAmbient(components.Ambient.Get(e), dt)
	})
}

// stepAmbient moves the hue forward by HueSpeed turns per second and
// refreshes the tint from it.
func stepAmbient(a *components.AmbientData, dt float64) {
	a.Hue = math.Mod(a.Hue+config.Ambient.HueSpeed*dt, 1)
	if a.Hue < 0 {
		a.Hue++
	}
	c := colorful.Hsl(a.Hue*360, config.Ambient.Saturation, config.Ambient.Lightness).Clamped()
	r, g, b := c.RGB255()
	a.Tint.R, a.Tint.G, a.Tint.B, a.Tint.A = r, g, b, 255
}
