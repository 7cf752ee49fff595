package ui

import (
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/automoto/geodash/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// OverlayUI holds the pause and settings menus drawn over a paused level.
type OverlayUI struct {
	Pause    *ebitenui.UI
	Settings *ebitenui.UI

	Overlay  *components.OverlayData
	settings *components.SettingsData

	OnRestart func()
	OnQuit    func()

	vsyncButton  *widget.Button
	debugButton  *widget.Button
	shapesButton *widget.Button
	faces        faces
}

func NewOverlayUI(overlay *components.OverlayData, settings *components.SettingsData, onRestart, onQuit func()) *OverlayUI {
	oui := &OverlayUI{
		Overlay:   overlay,
		settings:  settings,
		OnRestart: onRestart,
		OnQuit:    onQuit,
		faces:     loadFaces(),
	}
	oui.Pause = oui.buildPause()
	oui.Settings = oui.buildSettings()
	return oui
}

func (oui *OverlayUI) panel(title string) (*widget.Container, *widget.Container) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Pause.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	content := centeredColumn(image.NewNineSliceColor(cfg.Pause.PanelColor))
	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &oui.faces.normal, &widget.LabelColor{
			Idle: cfg.Pause.TitleColor,
		}),
	))
	rootContainer.AddChild(content)
	return rootContainer, content
}

func (oui *OverlayUI) buildPause() *ebitenui.UI {
	root, content := oui.panel("PAUSED")
	content.AddChild(newButton("Resume", &oui.faces.normal, oui.Overlay.Close))
	content.AddChild(newButton("Restart", &oui.faces.normal, func() { oui.OnRestart() }))
	content.AddChild(newButton("Settings", &oui.faces.normal, func() { oui.Overlay.Open(cfg.OverlaySettings) }))
	content.AddChild(newButton("Quit to Menu", &oui.faces.normal, func() { oui.OnQuit() }))
	return &ebitenui.UI{Container: root}
}

func (oui *OverlayUI) buildSettings() *ebitenui.UI {
	root, content := oui.panel("SETTINGS")
	s := oui.settings

	oui.vsyncButton = newButton("", &oui.faces.normal, func() { systems.SetVSync(s, !s.VSync) })
	oui.debugButton = newButton("", &oui.faces.normal, func() { systems.SetDebug(s, !s.Debug) })
	oui.shapesButton = newButton("", &oui.faces.normal, func() { systems.SetCollisionShapes(s, !s.CollisionShapes) })
	content.AddChild(oui.vsyncButton)
	content.AddChild(oui.debugButton)
	content.AddChild(oui.shapesButton)
	content.AddChild(newButton("Back", &oui.faces.normal, func() { oui.Overlay.Open(cfg.OverlayPause) }))
	oui.refresh()
	return &ebitenui.UI{Container: root}
}

func (oui *OverlayUI) refresh() {
	s := oui.settings
	setButtonLabel(oui.vsyncButton, toggleLabel("VSync", s.VSync))
	setButtonLabel(oui.debugButton, toggleLabel("Debug info", s.Debug))
	setButtonLabel(oui.shapesButton, toggleLabel("Collision shapes", s.CollisionShapes))
}

func toggleLabel(name string, on bool) string {
	if on {
		return name + ": On"
	}
	return name + ": Off"
}

// active is the menu for the overlay on top, nil when unpaused.
func (oui *OverlayUI) active() *ebitenui.UI {
	switch oui.Overlay.Top() {
	case cfg.OverlayPause:
		return oui.Pause
	case cfg.OverlaySettings:
		return oui.Settings
	}
	return nil
}

func (oui *OverlayUI) Update() {
	if ui := oui.active(); ui != nil {
		ui.Update()
	}
	oui.refresh()
}

func (oui *OverlayUI) Draw(screen *ebiten.Image) {
	if ui := oui.active(); ui != nil {
		ui.Draw(screen)
	}
}
