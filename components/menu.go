package components

import (
	"github.com/automoto/geodash/shared/leveldata"
	"github.com/yohamta/donburi"
)

// MenuData stores the current state of the main menu
type MenuData struct {
	Levels        []*leveldata.Meta
	SelectedIndex int
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
