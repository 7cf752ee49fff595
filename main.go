package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/config"
	"github.com/automoto/geodash/fonts"
	"github.com/automoto/geodash/scenes"
	"github.com/automoto/geodash/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// NewGame starts on the menu, or straight in level when it is set.
func NewGame(level string) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	textures := assets.NewRegistry(assets.FS())

	if level != "" {
		g.scene = scenes.NewPlayScene(g, textures, level)
	} else {
		g.scene = scenes.NewMenuScene(g, textures)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", "", "level to play, e.g. levels/level2.tmx (skips the menu)")
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	skipMenu := flag.Bool("skip-menu", false, "start the default level without the menu")
	debug := flag.Bool("debug", false, "show the debug HUD and collision shapes")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(nil, *configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags win over saved settings
	if *debug {
		config.Debug.ShowDebug = true
		config.Debug.ShowCollisionShapes = true
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}
	if *level == "" && config.Debug.SkipMenu {
		*level = config.Level.Default
	}

	if err := ebiten.RunGame(NewGame(*level)); err != nil {
		log.Fatal(err)
	}
}
