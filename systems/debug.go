package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/geodash/arena"
	"github.com/automoto/geodash/components"
	cfg "github.com/automoto/geodash/config"
	"github.com/automoto/geodash/fonts"
	"github.com/automoto/geodash/shared/gamemath"
	"github.com/automoto/geodash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const debugLineHeight = 18

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if settings.CollisionShapes {
		drawCollisionShapes(ecs, screen)
	}
	if settings.Debug {
		drawDebugHUD(ecs, screen)
	}
}

func debugLines(ecs *ecs.ECS) []string {
	lines := []string{fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())}

	level := GetLevel(ecs)
	if level == nil || level.Arena == nil {
		return lines
	}
	stats := level.Arena.Stats()
	lines = append(lines,
		fmt.Sprintf("collisions tested %d", stats.Tested),
		fmt.Sprintf("rendered %d/%d", level.Rendered, stats.Items),
	)
	if entry, ok := tags.Player.First(ecs.World); ok {
		p := components.Player.Get(entry).Physics
		lines = append(lines, fmt.Sprintf("player %s y=%.1f v=%.1f", p.State(), p.Position.Y, p.Velocity))
	}
	return lines
}

func drawDebugHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Mono.Get()
	for i, line := range debugLines(ecs) {
		text.Draw(screen, line, face, 10, debugLineHeight*(i+1), cfg.Debug.TextColor)
	}
}

func drawCollisionShapes(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := cameraOffset(ecs)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	if level := GetLevel(ecs); level != nil && level.Arena != nil {
		for _, item := range level.Arena.Items() {
			offset := dmath.Vec2{
				X: camera.X - item.Relative().X,
				Y: camera.Y - item.Relative().Y,
			}
			b := item.Collider.Bounds().Translate(offset.X, offset.Y)
			// Cull colliders outside the screen
			if b.Right() < 0 || b.X > width || b.Bottom() < 0 || b.Y > height {
				continue
			}
			drawCollider(screen, item, offset)
		}
	}

	if entry, ok := tags.Player.First(ecs.World); ok {
		box := components.Player.Get(entry).Physics.Bounds().Translate(camera.X, camera.Y)
		drawOutline(screen, box, cfg.Debug.PlayerColor)
	}
}

func drawCollider(screen *ebiten.Image, item *arena.Item, offset dmath.Vec2) {
	c := item.Collider
	clr := cfg.Debug.ShapeColor
	if item.Kind.Spike() {
		clr = cfg.Debug.SpikeColor
	}

	switch c.Kind {
	case gamemath.ColliderTriangle:
		drawTriangle(screen, c.Triangle, offset, clr)
	case gamemath.ColliderSpike:
		box := c.Box.Translate(offset.X, offset.Y)
		drawOutline(screen, box, clr)
		if tri, err := gamemath.SpikeTriangle(c.Box, c.Orientation); err == nil {
			drawTriangle(screen, tri, offset, clr)
		}
	default:
		drawOutline(screen, c.Box.Translate(offset.X, offset.Y), clr)
	}
}

func drawTriangle(screen *ebiten.Image, t gamemath.Triangle, offset dmath.Vec2, clr color.Color) {
	pts := t.Points()
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen,
			float32(a.X+offset.X), float32(a.Y+offset.Y),
			float32(b.X+offset.X), float32(b.Y+offset.Y),
			1, clr, false)
	}
}

func drawOutline(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
