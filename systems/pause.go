package systems

import (
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay opens and closes the pause and settings overlays.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdateOverlay(ecs *ecs.ECS) {
	overlay := GetOrCreateOverlay(ecs)
	input := getOrCreateInput(ecs)

	// A finished run is restarting; menus would only hold it up.
	if IsDying(ecs) {
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		overlay.TogglePause()
	}
	if GetAction(input, cfg.ActionSettings).JustPressed {
		overlay.ToggleSettings()
	}
}

// IsPaused reports whether an overlay is covering the level.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreateOverlay(ecs).Paused()
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// GetOrCreateOverlay returns the singleton Overlay component, creating if needed.
func GetOrCreateOverlay(ecs *ecs.ECS) *components.OverlayData {
	ent, ok := components.Overlay.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Overlay))
	}
	return components.Overlay.Get(ent)
}
