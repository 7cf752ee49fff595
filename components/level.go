package components

import (
	"github.com/automoto/geodash/arena"
	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Path     string
	Meta     *leveldata.Meta
	Map      *leveldata.Map
	Arena    *arena.Arena
	Textures *assets.Registry
	Rendered int // items drawn last frame
}

var Level = donburi.NewComponentType[LevelData]()
