package factory

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/geodash/archetypes"
	"github.com/automoto/geodash/arena"
	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/automoto/geodash/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the map at path and builds its arena. Textures are
// acquired from textures and released again by ReleaseLevel.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, path string, textures *assets.Registry) (*donburi.Entry, error) {
	m, err := leveldata.Load(fsys, path, textures)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}

	meta, err := leveldata.LoadMeta(fsys, path)
	if err != nil {
		log.Printf("Warning: using default level settings: %v", err)
		meta = &leveldata.Meta{Path: path, Name: leveldata.DisplayName(path)}
	}

	opts := []arena.Option{
		arena.WithViewport(float64(cfg.C.Width), float64(cfg.C.Height)),
	}
	if meta.HasScroll {
		opts = append(opts, arena.WithScrollSpeed(meta.ScrollSpeedX, meta.ScrollSpeedY))
	}

	a, err := arena.New(m, cfg.Arena, opts...)
	if err != nil {
		m.Release(textures)
		return nil, fmt.Errorf("build arena for %s: %w", path, err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Path:     path,
		Meta:     meta,
		Map:      m,
		Arena:    a,
		Textures: textures,
	})
	components.Ambient.SetValue(level, components.AmbientData{Tint: cfg.White})

	log.Printf("Loaded level %q: %d items, %d warnings", meta.Name, a.Stats().Items, len(m.Warnings)+len(a.Warnings))
	return level, nil
}

// ReleaseLevel hands the level's textures back to its registry.
func ReleaseLevel(level *components.LevelData) {
	if level == nil || level.Arena == nil {
		return
	}
	level.Arena.Close(level.Textures)
	level.Arena = nil
}
