package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the shape of an optional YAML tuning file. Only sections
// present in the file replace the built-in values; fields missing from a
// present section keep their defaults.
type Overrides struct {
	Physics *PhysicsConfig `yaml:"physics"`
	Arena   *ArenaConfig   `yaml:"arena"`
	Player  *PlayerConfig  `yaml:"player"`
	Camera  *CameraConfig  `yaml:"camera"`
	Ambient *AmbientConfig `yaml:"ambient"`
	Level   *LevelConfig   `yaml:"level"`
}

// ApplyOverrides decodes YAML data over the current configuration.
func ApplyOverrides(data []byte) error {
	// Seed every section with the current values so partial sections merge.
	o := Overrides{
		Physics: &PhysicsConfig{},
		Arena:   &ArenaConfig{},
		Player:  &PlayerConfig{},
		Camera:  &CameraConfig{},
		Ambient: &AmbientConfig{},
		Level:   &LevelConfig{},
	}
	*o.Physics = Physics
	*o.Arena = Arena
	*o.Player = Player
	*o.Camera = Camera
	*o.Ambient = Ambient
	*o.Level = Level

	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config overrides: %w", err)
	}

	// An empty section decodes as null and leaves its pointer nil.
	if o.Physics != nil {
		Physics = *o.Physics
	}
	if o.Arena != nil {
		Arena = *o.Arena
	}
	if o.Player != nil {
		Player = *o.Player
	}
	if o.Camera != nil {
		Camera = *o.Camera
	}
	if o.Ambient != nil {
		Ambient = *o.Ambient
	}
	if o.Level != nil {
		Level = *o.Level
	}
	return nil
}

// LoadOverrides applies the YAML file at path. fsys may be nil to read from
// the operating system.
func LoadOverrides(fsys fs.FS, path string) error {
	var data []byte
	var err error
	if fsys == nil {
		data, err = os.ReadFile(path)
	} else {
		data, err = fs.ReadFile(fsys, path)
	}
	if err != nil {
		return fmt.Errorf("read config overrides %s: %w", path, err)
	}
	return ApplyOverrides(data)
}
