package systems

import (
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var levelCanvas = &ebitenCanvas{}

// frameDelta is the fixed simulation step in seconds.
func frameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdateLevel scrolls the arena and ticks its items.
func UpdateLevel(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil || level.Arena == nil {
		return
	}
	level.Arena.Update(frameDelta())
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Arena == nil {
		return
	}

	camera := cameraOffset(ecs)
	tint := components.Ambient.Get(levelEntry).Tint

	levelCanvas.screen = screen
	level.Rendered = level.Arena.Render(levelCanvas, camera, tint)
}

// GetLevel returns the loaded level, or nil outside the play scene.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func cameraOffset(ecs *ecs.ECS) math.Vec2 {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return math.Vec2{}
	}
	return components.Camera.Get(entry).Position
}

// NewUpdateRestart calls onRestart when the restart key is pressed.
func NewUpdateRestart(onRestart func()) ecs.System {
	return func(e *ecs.ECS) {
		if GetAction(getOrCreateInput(e), cfg.ActionRestart).JustPressed {
			onRestart()
		}
	}
}
