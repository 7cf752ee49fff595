package systems

import (
	"image"

	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/automoto/geodash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var playerOp = &ebiten.DrawImageOptions{}

// UpdatePlayer feeds the jump input to the player's physics and starts the
// death fade when the run ends.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	level := GetLevel(ecs)
	if level == nil || level.Arena == nil {
		return
	}
	physics := components.Player.Get(playerEntry).Physics
	if physics.Dead() {
		return
	}

	input := getOrCreateInput(ecs)
	physics.SetJump(GetAction(input, cfg.ActionJump).Pressed)
	physics.Update(frameDelta(), level.Arena)

	if !physics.Dead() && physics.Position.Y > float64(cfg.C.Height) {
		physics.Kill()
	}
	if physics.Dead() {
		cause := "fell out of the level"
		if physics.KilledBy != nil {
			cause = "hit " + physics.KilledBy.Kind.String()
		}
		StartDeath(ecs, cause)
	}
}

func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	if p.Sprite == nil {
		return
	}
	physics := p.Physics
	camera := cameraOffset(ecs)

	size := p.Sprite.Size()
	src := image.Rect(0, 0, size.X, size.Y)
	if p.Frame > 0 && physics.Anim != nil {
		x := physics.Anim.Frame() * p.Frame
		src = image.Rect(x, 0, x+p.Frame, min(p.Frame, size.Y))
	}
	frame := p.Sprite.Image().SubImage(src).(*ebiten.Image)

	// Scale the frame to the collision box and spin it around its center.
	fw, fh := float64(src.Dx()), float64(src.Dy())
	playerOp.GeoM.Reset()
	playerOp.GeoM.Translate(-fw/2, -fh/2)
	playerOp.GeoM.Scale(physics.Size.X/fw, physics.Size.Y/fh)
	playerOp.GeoM.Rotate(physics.Rotation)
	playerOp.GeoM.Translate(
		physics.Position.X+physics.Size.X/2+camera.X,
		physics.Position.Y+physics.Size.Y/2+camera.Y,
	)
	screen.DrawImage(frame, playerOp)
}
