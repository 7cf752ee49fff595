package systems

import (
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the global debug config.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	ent, ok := components.Settings.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			VSync:           cfg.Debug.VSync,
			Debug:           cfg.Debug.ShowDebug,
			CollisionShapes: cfg.Debug.ShowCollisionShapes,
		})
	}
	return components.Settings.Get(ent)
}

// UpdateSettings toggles the debug HUD from its hotkey and saves any
// pending change.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		SetDebug(settings, !settings.Debug)
	}
	if settings.Dirty {
		SaveCurrentSettings(settings)
	}
}

func SetVSync(s *components.SettingsData, on bool) {
	s.VSync = on
	s.Dirty = true
	cfg.Debug.VSync = on
	ebiten.SetVsyncEnabled(on)
}

func SetDebug(s *components.SettingsData, on bool) {
	s.Debug = on
	s.Dirty = true
	cfg.Debug.ShowDebug = on
}

func SetCollisionShapes(s *components.SettingsData, on bool) {
	s.CollisionShapes = on
	s.Dirty = true
	cfg.Debug.ShowCollisionShapes = on
}
