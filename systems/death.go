package systems

import (
	"image/color"
	"log"

	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartDeath begins the fade that ends a run. Repeated calls are ignored.
func StartDeath(ecs *ecs.ECS, cause string) {
	if _, ok := components.Death.First(ecs.World); ok {
		return
	}
	log.Printf("Run ended: %s", cause)

	entry := ecs.World.Entry(ecs.World.Create(components.Death))
	components.Death.SetValue(entry, components.DeathData{
		Fade: gween.New(0, 1, float32(cfg.Death.FadeSeconds), ease.InQuad),
	})
}

// IsDying reports whether the death fade has started.
func IsDying(ecs *ecs.ECS) bool {
	_, ok := components.Death.First(ecs.World)
	return ok
}

// DeathFinished reports whether the fade is over and the level can restart.
func DeathFinished(ecs *ecs.ECS) bool {
	entry, ok := components.Death.First(ecs.World)
	if !ok {
		return false
	}
	return components.Death.Get(entry).Finished
}

func UpdateDeath(ecs *ecs.ECS) {
	entry, ok := components.Death.First(ecs.World)
	if !ok {
		return
	}
	death := components.Death.Get(entry)
	if death.Finished {
		return
	}
	alpha, finished := death.Fade.Update(float32(frameDelta()))
	death.Alpha = alpha
	death.Finished = finished
}

// StartIntro fades the level in from black.
func StartIntro(ecs *ecs.ECS) {
	if cfg.Death.IntroSeconds <= 0 {
		return
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Intro))
	components.Intro.SetValue(entry, components.IntroData{
		Fade:  gween.New(1, 0, float32(cfg.Death.IntroSeconds), ease.OutQuad),
		Alpha: 1,
	})
}

func UpdateIntro(ecs *ecs.ECS) {
	entry, ok := components.Intro.First(ecs.World)
	if !ok {
		return
	}
	intro := components.Intro.Get(entry)
	alpha, finished := intro.Fade.Update(float32(frameDelta()))
	intro.Alpha = alpha
	if finished {
		ecs.World.Remove(entry.Entity())
	}
}

// DrawFade covers the screen with the intro or death fade.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())

	if entry, ok := components.Intro.First(ecs.World); ok {
		alpha := components.Intro.Get(entry).Alpha
		vector.FillRect(screen, 0, 0, w, h, fadeColor(cfg.Black, alpha), false)
	}
	if entry, ok := components.Death.First(ecs.World); ok {
		alpha := components.Death.Get(entry).Alpha
		vector.FillRect(screen, 0, 0, w, h, fadeColor(cfg.Death.FadeColor, alpha), false)
	}
}

// fadeColor scales c, premultiplied, by alpha in [0, 1].
func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
