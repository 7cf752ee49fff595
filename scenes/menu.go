package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/geodash/assets"
	cfg "github.com/automoto/geodash/config"
	"github.com/automoto/geodash/shared/leveldata"
	"github.com/automoto/geodash/systems"
	"github.com/automoto/geodash/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lists the embedded levels
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	textures     *assets.Registry
	menuUI       *ui.MenuUI
	once         sync.Once

	playPath   string
	shouldQuit bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, textures *assets.Registry) *MenuScene {
	return &MenuScene{sceneChanger: sc, textures: textures}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.shouldQuit {
		os.Exit(0)
	}
	if ms.playPath != "" {
		ms.sceneChanger.ChangeScene(NewPlayScene(ms.sceneChanger, ms.textures, ms.playPath))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	menu := systems.GetOrCreateMenu(ms.ecs)
	levels, err := leveldata.LoadAllMeta(assets.FS(), cfg.Level.Dir)
	if err != nil {
		log.Printf("Warning: no levels to list: %v", err)
	}
	menu.Levels = levels

	play := func(path string) { ms.playPath = path }
	quit := func() { ms.shouldQuit = true }

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(play, quit))

	ms.menuUI = ui.NewMenuUI(menu, play, quit)
}
