package ui

import (
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// MenuUI lists the embedded levels and a Quit button.
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	OnPlay func(path string)
	OnQuit func()

	buttons []*widget.Button
	labels  []string
	faces   faces
}

func NewMenuUI(menu *components.MenuData, onPlay func(path string), onQuit func()) *MenuUI {
	mui := &MenuUI{
		Menu:   menu,
		OnPlay: onPlay,
		OnQuit: onQuit,
		faces:  loadFaces(),
	}
	mui.buildUI()
	return mui
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	content := centeredColumn(nil)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.faces.title, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	for _, level := range mui.Menu.Levels {
		path := level.Path
		mui.addButton(level.Name, func() { mui.OnPlay(path) })
	}
	mui.addButton("Quit", func() { mui.OnQuit() })
	for _, b := range mui.buttons {
		content.AddChild(b)
	}

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows: Select   Enter: Play   Esc: Quit", &mui.faces.small, &widget.LabelColor{
			Idle: cfg.Pause.TextColor,
		}),
	))

	rootContainer.AddChild(content)
	mui.UI = &ebitenui.UI{Container: rootContainer}
}

func (mui *MenuUI) addButton(label string, onClick func()) {
	mui.labels = append(mui.labels, label)
	mui.buttons = append(mui.buttons, newButton(label, &mui.faces.normal, onClick))
}

// Update runs the widgets and marks the keyboard selection.
func (mui *MenuUI) Update() {
	mui.UI.Update()
	for i, b := range mui.buttons {
		setButtonLabel(b, selectionLabel(mui.labels[i], i == mui.Menu.SelectedIndex))
	}
}

func selectionLabel(label string, selected bool) string {
	if selected {
		return "> " + label + " <"
	}
	return label
}
