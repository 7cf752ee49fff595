package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/automoto/geodash/systems"
	"github.com/automoto/geodash/systems/factory"
	"github.com/automoto/geodash/tags"
	"github.com/automoto/geodash/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayScene runs one level until the player quits to the menu.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	textures     *assets.Registry
	path         string
	overlayUI    *ui.OverlayUI
	once         sync.Once
	loadErr      error

	shouldRestart bool
	shouldQuit    bool
}

func NewPlayScene(sc SceneChanger, textures *assets.Registry, path string) *PlayScene {
	return &PlayScene{sceneChanger: sc, textures: textures, path: path}
}

func (ps *PlayScene) Update() {
	ps.once.Do(func() { ps.loadErr = ps.configure() })
	if ps.loadErr != nil {
		log.Printf("Error: %v", ps.loadErr)
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.textures))
		return
	}

	ps.ecs.Update()
	if systems.IsPaused(ps.ecs) {
		ps.overlayUI.Update()
	}

	switch {
	case ps.shouldQuit:
		ps.close()
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.textures))
	case ps.shouldRestart || systems.DeathFinished(ps.ecs):
		ps.close()
		ps.sceneChanger.ChangeScene(NewPlayScene(ps.sceneChanger, ps.textures, ps.path))
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil || ps.loadErr != nil {
		return
	}
	ps.ecs.Draw(screen)
	ps.overlayUI.Draw(screen)
}

func (ps *PlayScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())
	ps.ecs = ecs

	level, err := factory.CreateLevel(ecs, assets.FS(), ps.path, ps.textures)
	if err != nil {
		return err
	}
	meta := components.Level.Get(level).Meta

	x, y := meta.Spawn(cfg.Player.StartX, cfg.Player.StartY)
	factory.CreatePlayer(ecs, x, y, ps.textures)
	factory.CreateCamera(ecs)

	// Snap the camera to the spawn so the level does not pan in from zero
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Get(cameraEntry).Position.Y = cfg.Camera.OffsetY - y
	}

	restart := func() { ps.shouldRestart = true }
	quit := func() { ps.shouldQuit = true }

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateOverlay)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateDeath)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithPauseCheck(systems.NewUpdateRestart(restart)))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateLevel))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateIntro))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)

	ps.overlayUI = ui.NewOverlayUI(
		systems.GetOrCreateOverlay(ecs),
		systems.GetOrCreateSettings(ecs),
		restart,
		quit,
	)

	systems.StartIntro(ecs)
	return nil
}

// close hands the level's textures back before the scene is dropped.
func (ps *PlayScene) close() {
	if level := systems.GetLevel(ps.ecs); level != nil {
		factory.ReleaseLevel(level)
	}
	if entry, ok := tags.Player.First(ps.ecs.World); ok {
		factory.ReleasePlayer(components.Player.Get(entry), ps.textures)
	}
}
