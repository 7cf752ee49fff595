package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds the user toggles edited from the settings overlay and
// persisted between runs.
type SettingsData struct {
	VSync           bool
	Debug           bool
	CollisionShapes bool
	Dirty           bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
