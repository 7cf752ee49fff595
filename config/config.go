package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds the logical screen size.
type Config struct {
	Width  int
	Height int
}

// PhysicsConfig contains the player's vertical integration constants.
// These values define the feel of every level; changing them changes which
// jumps are possible.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	JumpSpeed         float64 `yaml:"jumpSpeed"`    // acceleration applied on takeoff
	JumpVelocity      float64 `yaml:"jumpVelocity"` // velocity applied on takeoff, negative is up
	MaxVelocity       float64 `yaml:"maxVelocity"`
	MaxAcceleration   float64 `yaml:"maxAcceleration"`
	DeathThreshold    float64 `yaml:"deathThreshold"` // largest landing correction that is not a crash
	RotationSpeed     float64 `yaml:"rotationSpeed"`  // radians per millisecond while airborne
	JumpHoldThreshold float64 `yaml:"jumpHoldThreshold"`
}

// ArenaConfig contains world scrolling and culling configuration
type ArenaConfig struct {
	ScrollSpeedX    float64 `yaml:"scrollSpeedX"`
	ScrollSpeedY    float64 `yaml:"scrollSpeedY"`
	SpawnRowsAbove  int     `yaml:"spawnRowsAbove"`
	CullMarginTiles int     `yaml:"cullMarginTiles"`
	DefaultTileSize int     `yaml:"defaultTileSize"`
	ExactSpikes     bool    `yaml:"exactSpikes"` // exact triangle test instead of the spike approximation
}

// PlayerConfig contains the player's spawn and sprite configuration
type PlayerConfig struct {
	StartX      float64 `yaml:"startX"`
	StartY      float64 `yaml:"startY"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Texture     string  `yaml:"texture"`
	FrameWidth  int     `yaml:"frameWidth"`
	FrameHeight int     `yaml:"frameHeight"`
	FrameRate   float64 `yaml:"frameRate"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	OffsetY         float64 `yaml:"offsetY"`         // screen-space height the player is kept near
	FollowSmoothing float64 `yaml:"followSmoothing"` // How fast camera follows player (0.0-1.0)
}

// AmbientConfig drives the hue-cycling tint applied to the level.
type AmbientConfig struct {
	HueSpeed   float64 `yaml:"hueSpeed"` // full hue turns per second
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// DeathConfig contains the death fade timing
type DeathConfig struct {
	FadeSeconds  float64 `yaml:"fadeSeconds"`
	FadeColor    color.RGBA
	IntroSeconds float64 `yaml:"introSeconds"`
}

// LevelConfig selects the map the play scene loads.
type LevelConfig struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
}

// PauseConfig contains the pause/settings overlay appearance
type PauseConfig struct {
	OverlayColor color.RGBA
	PanelColor   color.RGBA
	TitleColor   color.RGBA
	ButtonIdle   color.RGBA
	ButtonHover  color.RGBA
	ButtonPress  color.RGBA
	TextColor    color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// DebugConfig contains debug/testing options. Saved settings and CLI flags
// both write here.
type DebugConfig struct {
	SkipMenu            bool // Skip menu and go directly to game
	ShowDebug           bool // FPS and collision counters
	ShowCollisionShapes bool
	VSync               bool
	TextColor           color.RGBA
	ShapeColor          color.RGBA
	SpikeColor          color.RGBA
	PlayerColor         color.RGBA
}

var C *Config
var Physics PhysicsConfig
var Arena ArenaConfig
var Player PlayerConfig
var Camera CameraConfig
var Ambient AmbientConfig
var Death DeathConfig
var Level LevelConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1200,
		Height: 800,
	}

	Physics = PhysicsConfig{
		Gravity:           6800,
		JumpSpeed:         200,
		JumpVelocity:      -500,
		MaxVelocity:       800,
		MaxAcceleration:   1500,
		DeathThreshold:    5,
		RotationSpeed:     0.001,
		JumpHoldThreshold: 0.005,
	}

	Arena = ArenaConfig{
		ScrollSpeedX:    250,
		ScrollSpeedY:    0,
		SpawnRowsAbove:  10,
		CullMarginTiles: 2,
		DefaultTileSize: 64,
		ExactSpikes:     false,
	}

	Player = PlayerConfig{
		StartX:      150,
		StartY:      300,
		Width:       32,
		Height:      32,
		Texture:     "images/player.png",
		FrameWidth:  32,
		FrameHeight: 32,
		FrameRate:   12,
	}

	Camera = CameraConfig{
		OffsetY:         float64(C.Height) / 2,
		FollowSmoothing: 0.1,
	}

	Ambient = AmbientConfig{
		HueSpeed:   0.05,
		Saturation: 0.7,
		Lightness:  0.8,
	}

	Death = DeathConfig{
		FadeSeconds:  0.6,
		FadeColor:    color.RGBA{R: 20, G: 0, B: 0, A: 255},
		IntroSeconds: 0.4,
	}

	Level = LevelConfig{
		Dir:     "levels",
		Default: "levels/level1.tmx",
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		PanelColor:   color.RGBA{R: 20, G: 20, B: 30, A: 230},
		TitleColor:   Orange,
		ButtonIdle:   color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:  color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPress:  color.RGBA{R: 40, G: 40, B: 60, A: 255},
		TextColor:    White,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		Title:           "GEODASH",
	}

	Debug = DebugConfig{
		SkipMenu:            false,
		ShowDebug:           false,
		ShowCollisionShapes: false,
		VSync:               true,
		TextColor:           Yellow,
		ShapeColor:          Green,
		SpikeColor:          Red,
		PlayerColor:         color.RGBA{R: 0, G: 200, B: 255, A: 255},
	}
}
