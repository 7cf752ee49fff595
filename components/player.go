package components

import (
	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/player"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Physics *player.Physics
	Sprite  *assets.Texture
	Frame   int // frame width and height in pixels
}

var Player = donburi.NewComponentType[PlayerData]()
