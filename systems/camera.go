package systems

import (
	"github.com/automoto/geodash/components"
	"github.com/automoto/geodash/config"
	"github.com/automoto/geodash/shared/gamemath"
	"github.com/automoto/geodash/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the vertical offset so the player stays near
// Camera.OffsetY on screen. The arena scroll already handles X.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	physics := components.Player.Get(playerEntry).Physics

	camera.Position.Y = cameraTargetY(camera.Position.Y, physics.Position.Y)
}

func cameraTargetY(current, playerY float64) float64 {
	target := config.Camera.OffsetY - playerY
	return gamemath.Lerp(current, target, config.Camera.FollowSmoothing)
}
