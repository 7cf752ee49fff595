package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks a run that has ended. Fade drives the screen to the
// death color; the level restarts once it finishes.
type DeathData struct {
	Fade     *gween.Tween
	Alpha    float32
	Finished bool
}

var Death = donburi.NewComponentType[DeathData]()

// IntroData fades the level in after a (re)start.
type IntroData struct {
	Fade  *gween.Tween
	Alpha float32
}

var Intro = donburi.NewComponentType[IntroData]()
