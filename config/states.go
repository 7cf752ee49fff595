package config

// OverlayID names the menu drawn on top of a paused play scene.
type OverlayID int

const (
	OverlayNone OverlayID = iota
	OverlayPause
	OverlaySettings
)

func (o OverlayID) String() string {
	switch o {
	case OverlayPause:
		return "pause"
	case OverlaySettings:
		return "settings"
	default:
		return "none"
	}
}
