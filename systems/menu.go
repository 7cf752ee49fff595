package systems

import (
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/yohamta/donburi/ecs"
)

// MenuOptionCount is the number of entries: one per level, then Quit.
func MenuOptionCount(menu *components.MenuData) int {
	return len(menu.Levels) + 1
}

// IsQuitSelected reports whether the cursor is on the Quit entry.
func IsQuitSelected(menu *components.MenuData) bool {
	return menu.SelectedIndex == len(menu.Levels)
}

// MoveMenuSelection moves the cursor by delta with wrap-around.
func MoveMenuSelection(menu *components.MenuData, delta int) {
	n := MenuOptionCount(menu)
	menu.SelectedIndex = ((menu.SelectedIndex+delta)%n + n) % n
}

// NewUpdateMenu creates the keyboard and gamepad navigation system of the
// main menu. onPlay receives the chosen level's path.
func NewUpdateMenu(onPlay func(path string), onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			MoveMenuSelection(menu, -1)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			MoveMenuSelection(menu, 1)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			if IsQuitSelected(menu) {
				onQuit()
				return
			}
			onPlay(menu.Levels[menu.SelectedIndex].Path)
			return
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			onQuit()
		}
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed.
func GetOrCreateMenu(ecs *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
