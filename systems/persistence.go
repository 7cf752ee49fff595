package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	VSync           bool `json:"vsync"`
	Debug           bool `json:"debug"`
	CollisionShapes bool `json:"collisionShapes"`
}

// itemStore is the part of gdata.Manager the game uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "geodash",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings writes the settings component to disk and clears its
// dirty flag on success.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		VSync:           s.VSync,
		Debug:           s.Debug,
		CollisionShapes: s.CollisionShapes,
	}
	if err := SaveSettings(saved); err == nil {
		s.Dirty = false
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.VSync = saved.VSync
	cfg.Debug.ShowDebug = saved.Debug
	cfg.Debug.ShowCollisionShapes = saved.CollisionShapes
	ebiten.SetVsyncEnabled(saved.VSync)
}
