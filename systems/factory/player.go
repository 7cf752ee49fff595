package factory

import (
	"github.com/automoto/geodash/archetypes"
	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/assets/animations"
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/automoto/geodash/player"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64, textures *assets.Registry) *donburi.Entry {
	entry := archetypes.Player.Spawn(ecs)

	sprite := textures.MustAcquire(cfg.Player.Texture)
	frames := 1
	if cfg.Player.FrameWidth > 0 {
		frames = max(sprite.Size().X/cfg.Player.FrameWidth, 1)
	}
	anim := animations.NewAnimation(0, frames-1, frames, cfg.Player.FrameRate)

	physics := player.New(
		cfg.Physics,
		math.Vec2{X: x, Y: y},
		math.Vec2{X: cfg.Player.Width, Y: cfg.Player.Height},
		anim,
	)

	components.Player.SetValue(entry, components.PlayerData{
		Physics: physics,
		Sprite:  sprite,
		Frame:   cfg.Player.FrameWidth,
	})

	return entry
}

// ReleasePlayer returns the sprite taken by CreatePlayer.
func ReleasePlayer(p *components.PlayerData, textures *assets.Registry) {
	if p == nil || p.Sprite == nil {
		return
	}
	textures.Release(p.Sprite.Key())
	p.Sprite = nil
}
