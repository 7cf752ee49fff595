package components

import (
	cfg "github.com/automoto/geodash/config"
	"github.com/yohamta/donburi"
)

// OverlayData is the stack of menus drawn over a paused level. It holds at
// most one entry; gameplay runs only while it is empty.
type OverlayData struct {
	Stack []cfg.OverlayID
}

func (o *OverlayData) Top() cfg.OverlayID {
	if len(o.Stack) == 0 {
		return cfg.OverlayNone
	}
	return o.Stack[len(o.Stack)-1]
}

func (o *OverlayData) Paused() bool {
	return len(o.Stack) > 0
}

// Open replaces whatever overlay is showing with id.
func (o *OverlayData) Open(id cfg.OverlayID) {
	o.Stack = append(o.Stack[:0], id)
}

func (o *OverlayData) Close() {
	o.Stack = o.Stack[:0]
}

// Toggle closes id when it is on top and opens it otherwise.
func (o *OverlayData) Toggle(id cfg.OverlayID) {
	if o.Top() == id {
		o.Close()
		return
	}
	o.Open(id)
}

// TogglePause backs out of settings into the pause menu before resuming.
func (o *OverlayData) TogglePause() {
	if o.Top() == cfg.OverlaySettings {
		o.Open(cfg.OverlayPause)
		return
	}
	o.Toggle(cfg.OverlayPause)
}

func (o *OverlayData) ToggleSettings() {
	o.Toggle(cfg.OverlaySettings)
}

var Overlay = donburi.NewComponentType[OverlayData]()
