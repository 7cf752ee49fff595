package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/geodash/archetypes"
	"github.com/automoto/geodash/arena"
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/automoto/geodash/player"
	"github.com/automoto/geodash/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// spawnRun creates an empty level and a player at y.
func spawnRun(t *testing.T, e *ecs.ECS, y float64) *player.Physics {
	t.Helper()
	m := &leveldata.Map{Grid: leveldata.NewTileGrid(4, 4), TileWidth: 64, TileHeight: 64}
	a, err := arena.New(m, cfg.Arena)
	if err != nil {
		t.Fatal(err)
	}
	level := archetypes.Level.Spawn(e)
	components.Level.SetValue(level, components.LevelData{Map: m, Arena: a})

	physics := player.New(cfg.Physics, math.Vec2{X: 150, Y: y}, math.Vec2{X: 32, Y: 32}, nil)
	entry := archetypes.Player.Spawn(e)
	components.Player.SetValue(entry, components.PlayerData{Physics: physics})
	return physics
}

func TestWithPauseCheck(t *testing.T) {
	e := newTestECS()
	calls := 0
	system := WithPauseCheck(func(*ecs.ECS) { calls++ })

	system(e)
	GetOrCreateOverlay(e).TogglePause()
	system(e)
	GetOrCreateOverlay(e).TogglePause()
	system(e)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestOverlayIgnoredWhileDying(t *testing.T) {
	e := newTestECS()
	input := getOrCreateInput(e)
	StartDeath(e, "test")

	input.Current[cfg.ActionPause] = true
	UpdateOverlay(e)
	if IsPaused(e) {
		t.Error("paused during the death fade")
	}
}

func TestOverlayKeys(t *testing.T) {
	e := newTestECS()
	input := getOrCreateInput(e)
	press := func(id cfg.ActionID) {
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		input.Current[id] = true
		UpdateOverlay(e)
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
	}

	press(cfg.ActionSettings)
	if got := GetOrCreateOverlay(e).Top(); got != cfg.OverlaySettings {
		t.Fatalf("top = %v, want settings", got)
	}
	press(cfg.ActionPause)
	if got := GetOrCreateOverlay(e).Top(); got != cfg.OverlayPause {
		t.Fatalf("top = %v, want pause", got)
	}
	press(cfg.ActionPause)
	if IsPaused(e) {
		t.Error("second pause press did not resume")
	}
}

func TestDeathFade(t *testing.T) {
	e := newTestECS()
	StartDeath(e, "first")
	StartDeath(e, "second")

	n := 0
	components.Death.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 1 {
		t.Fatalf("death entries = %d, want 1", n)
	}

	for i := 0; i < 600 && !DeathFinished(e); i++ {
		UpdateDeath(e)
	}
	if !DeathFinished(e) {
		t.Fatal("fade never finished")
	}
	entry, _ := components.Death.First(e.World)
	if a := components.Death.Get(entry).Alpha; a != 1 {
		t.Errorf("alpha = %v, want 1", a)
	}
}

func TestIntroRemovesItself(t *testing.T) {
	e := newTestECS()
	StartIntro(e)
	for i := 0; i < 600; i++ {
		UpdateIntro(e)
	}
	if _, ok := components.Intro.First(e.World); ok {
		t.Error("intro still present")
	}
}

func TestFadeColor(t *testing.T) {
	tests := []struct {
		alpha float32
		want  color.RGBA
	}{
		{0, color.RGBA{}},
		{0.5, color.RGBA{R: 100, G: 50, B: 0, A: 127}},
		{1, color.RGBA{R: 200, G: 100, B: 0, A: 255}},
		{2, color.RGBA{R: 200, G: 100, B: 0, A: 255}},
	}
	for _, tt := range tests {
		if got := fadeColor(color.RGBA{R: 200, G: 100, A: 255}, tt.alpha); got != tt.want {
			t.Errorf("alpha %v: got %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestCameraTargetY(t *testing.T) {
	saved := cfg.Camera
	t.Cleanup(func() { cfg.Camera = saved })
	cfg.Camera = cfg.CameraConfig{OffsetY: 400, FollowSmoothing: 0.5}

	if got := cameraTargetY(0, 300); got != 50 {
		t.Errorf("first step = %v, want 50", got)
	}
	if got := cameraTargetY(100, 300); got != 100 {
		t.Errorf("settled = %v, want 100", got)
	}
}

func TestUpdatePlayerFallsOut(t *testing.T) {
	e := newTestECS()
	physics := spawnRun(t, e, float64(cfg.C.Height)-1)
	physics.Velocity = cfg.Physics.MaxVelocity

	UpdatePlayer(e)

	if !physics.Dead() || physics.KilledBy != nil {
		t.Fatalf("state %v killed by %v", physics.State(), physics.KilledBy)
	}
	if !IsDying(e) {
		t.Error("death fade not started")
	}
}

func TestUpdatePlayerJumpInput(t *testing.T) {
	e := newTestECS()
	physics := spawnRun(t, e, 300)
	getOrCreateInput(e).Current[cfg.ActionJump] = true

	UpdatePlayer(e)

	// Airborne without ground: the jump input is stored but cannot fire.
	if physics.Dead() || physics.Velocity <= 0 {
		t.Errorf("state %v velocity %v", physics.State(), physics.Velocity)
	}
	if IsDying(e) {
		t.Error("death fade started")
	}
}
