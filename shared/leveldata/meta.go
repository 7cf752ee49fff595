package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Meta is the optional per-level data authored in Tiled: a display name,
// a scroll speed override and a player spawn point.
type Meta struct {
	Path         string
	Name         string
	ScrollSpeedX float64
	ScrollSpeedY float64
	HasScroll    bool
	SpawnX       float64
	SpawnY       float64
	HasSpawn     bool
}

// Spawn returns the authored player start, or the given default when the
// level has none. The Spawn object is read in screen space, measured from
// the top-left of the window at the level's starting scroll, not in map
// pixels.
func (m *Meta) Spawn(defX, defY float64) (float64, float64) {
	if m == nil || !m.HasSpawn {
		return defX, defY
	}
	return m.SpawnX, m.SpawnY
}

// LoadMeta reads map properties and the spawn object group through
// go-tiled. It is independent from Load so a level still plays when the
// metadata pass rejects something the core loader tolerates.
func LoadMeta(fsys fs.FS, tmxPath string) (*Meta, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	meta := &Meta{
		Path: tmxPath,
		Name: levelMap.Properties.GetString("name"),
	}
	if meta.Name == "" {
		meta.Name = DisplayName(tmxPath)
	}

	if levelMap.Properties.GetString("scrollSpeed") != "" {
		meta.ScrollSpeedX = levelMap.Properties.GetFloat("scrollSpeed")
		meta.ScrollSpeedY = levelMap.Properties.GetFloat("scrollSpeedY")
		meta.HasScroll = true
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Spawn" && og.Name != "PlayerSpawn" {
			continue
		}
		if len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		meta.SpawnX, meta.SpawnY = o.X, o.Y
		meta.HasSpawn = true
		break
	}

	return meta, nil
}

// LoadAllMeta discovers every .tmx in levelsDir. A level whose metadata
// cannot be read is still listed, named after its file.
func LoadAllMeta(fsys fs.FS, levelsDir string) ([]*Meta, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	sort.Strings(matches)
	levels := make([]*Meta, 0, len(matches))
	for _, p := range matches {
		meta, err := LoadMeta(fsys, p)
		if err != nil {
			log.Printf("Warning: level metadata unavailable: %v", err)
			meta = &Meta{Path: p, Name: DisplayName(p)}
		}
		levels = append(levels, meta)
	}

	return levels, nil
}

// DisplayName turns "levels/level_two.tmx" into "Level Two".
func DisplayName(file string) string {
	base := path.Base(file)
	name := strings.TrimSuffix(base, path.Ext(base))
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
