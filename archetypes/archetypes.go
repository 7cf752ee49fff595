package archetypes

import (
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/automoto/geodash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.Ambient,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
