// Package arena turns a loaded tile map into a scrolling world of placed
// items and answers collision queries against it.
package arena

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/config"
	"github.com/automoto/geodash/shared/gamemath"
	"github.com/automoto/geodash/shared/leveldata"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

var ErrUnresolvedTile = errors.New("tile id has no tileset")

const tagTile = "tile"

// Stats reports the world size and the work done by the last query.
type Stats struct {
	Items  int
	Tested int // exact collider tests run by the last CollidePlayer
}

type Arena struct {
	grid      leveldata.TileGrid
	tileSize  dmath.Vec2
	position  dmath.Vec2
	velocity  dmath.Vec2
	viewport  dmath.Vec2
	margin    int
	spawnRows int

	m        *leveldata.Map
	textures map[uint32]*assets.Texture
	items    []*Item
	space    *resolv.Space

	stats    Stats
	Warnings []string
}

type Option func(*Arena)

// WithViewport sets the visible area used for culling. The default is the
// whole map.
func WithViewport(width, height float64) Option {
	return func(a *Arena) {
		a.viewport = dmath.Vec2{X: width, Y: height}
	}
}

// WithScrollSpeed replaces the configured scroll velocity, in pixels per
// second.
func WithScrollSpeed(x, y float64) Option {
	return func(a *Arena) {
		a.velocity = dmath.Vec2{X: x, Y: y}
	}
}

// New builds the world from m. The arena keeps m and releases its textures
// on Close.
func New(m *leveldata.Map, cfg config.ArenaConfig, opts ...Option) (*Arena, error) {
	tw, th := m.TileWidth, m.TileHeight
	if tw <= 0 {
		tw = cfg.DefaultTileSize
	}
	if th <= 0 {
		th = cfg.DefaultTileSize
	}

	a := &Arena{
		grid:      m.Grid,
		tileSize:  dmath.Vec2{X: float64(tw), Y: float64(th)},
		velocity:  dmath.Vec2{X: cfg.ScrollSpeedX, Y: cfg.ScrollSpeedY},
		viewport:  dmath.Vec2{X: float64(m.Grid.Width * tw), Y: float64(m.Grid.Height * th)},
		margin:    cfg.CullMarginTiles,
		spawnRows: cfg.SpawnRowsAbove,
		m:         m,
		textures:  make(map[uint32]*assets.Texture),
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.createWorld(cfg.ExactSpikes); err != nil {
		return nil, err
	}
	a.ResetPos()
	return a, nil
}

func (a *Arena) createWorld(exact bool) error {
	sets := make([]*leveldata.TileSet, len(a.m.TileSets))
	for i := range a.m.TileSets {
		sets[i] = &a.m.TileSets[i]
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].FirstGID < sets[j].FirstGID })

	kinds := make([]Kind, len(sets))
	for i, ts := range sets {
		kind, ok := KindFromTileSet(ts.Name)
		if !ok {
			a.warnf("unknown tileset type %q, treating as Default", ts.Name)
		}
		kinds[i] = kind
	}

	a.items = make([]*Item, 0, a.grid.NonZero())
	a.space = resolv.NewSpace(
		max(a.grid.Width*int(a.tileSize.X), 1), max(a.grid.Height*int(a.tileSize.Y), 1),
		int(a.tileSize.X), int(a.tileSize.Y),
	)

	for row := a.grid.Height - 1; row >= 0; row-- {
		for col := 0; col < a.grid.Width; col++ {
			raw := a.grid.At(col, row)
			if raw == 0 {
				continue
			}
			gid, flips := leveldata.SplitGID(raw)
			idx, err := resolveTileSet(sets, gid)
			if err != nil {
				return fmt.Errorf("cell %d,%d: %w", col, row, err)
			}
			ts := sets[idx]

			pos := dmath.Vec2{X: float64(col) * a.tileSize.X, Y: float64(row) * a.tileSize.Y}
			size := dmath.Vec2{X: float64(ts.TileWidth), Y: float64(ts.TileHeight)}
			if size.X <= 0 || size.Y <= 0 {
				size = a.tileSize
			}
			sheet := frameLayout(ts)
			frame := int(gid - ts.FirstGID)

			item, err := newItem(len(a.items)+1, len(a.items), kinds[idx], pos, size, frame, sheet, exact)
			if err != nil {
				return fmt.Errorf("collider for cell %d,%d: %w", col, row, err)
			}
			item.Flips = flips
			item.Padding = ts.Padding
			item.Texture = a.texture(gid, ts)
			if ts.FrameRate > 0 && sheet.X*sheet.Y > 1 {
				item.SetAnimation(0, sheet.X*sheet.Y-1, ts.FrameRate)
				item.Anim.SetFrame(frame)
				item.refreshCollider()
			}

			obj := resolv.NewObject(pos.X, pos.Y, size.X, size.Y, tagTile)
			obj.Data = item
			a.space.Add(obj)
			a.items = append(a.items, item)
		}
	}
	return nil
}

// resolveTileSet finds the set whose GID range holds gid. sets must be
// sorted by FirstGID; the last range is open-ended.
func resolveTileSet(sets []*leveldata.TileSet, gid uint32) (int, error) {
	for i := len(sets) - 1; i >= 0; i-- {
		if gid >= sets[i].FirstGID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrUnresolvedTile, gid)
}

// frameLayout is the sheet grid: columns by ceil(tileCount/columns).
func frameLayout(ts *leveldata.TileSet) image.Point {
	if ts.Columns <= 0 {
		return image.Pt(1, 1)
	}
	rows := (ts.TileCount + ts.Columns - 1) / ts.Columns
	return image.Pt(ts.Columns, max(rows, 1))
}

func (a *Arena) texture(gid uint32, ts *leveldata.TileSet) *assets.Texture {
	if tex, ok := a.textures[gid]; ok {
		return tex
	}
	tex := ts.Texture()
	a.textures[gid] = tex
	return tex
}

func (a *Arena) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("Warning: %s", msg)
	a.Warnings = append(a.Warnings, msg)
}

// ResetPos rewinds the scroll to the start of the level, a fixed number of
// rows above the highest occupied row.
func (a *Arena) ResetPos() {
	a.position = dmath.Vec2{}
	for row := 0; row < a.grid.Height; row++ {
		for col := 0; col < a.grid.Width; col++ {
			if a.grid.At(col, row) != 0 {
				a.position.Y = float64(row-a.spawnRows) * a.tileSize.Y
				a.syncItems()
				return
			}
		}
	}
	a.syncItems()
}

// syncItems pushes the scroll offset to every item.
func (a *Arena) syncItems() {
	for _, item := range a.items {
		item.relative = a.position
	}
}

// Update advances the scroll by dt seconds and ticks every item.
func (a *Arena) Update(dt float64) {
	a.position.X += a.velocity.X * dt
	a.position.Y += a.velocity.Y * dt

	// Ranging evaluates the slice once, so callbacks cannot disturb it.
	for _, item := range a.items {
		item.update(a.position, dt)
	}
}

// visible reports whether item lies in the culling window around the
// scroll position. Both bounds are inclusive.
func (a *Arena) visible(item *Item) bool {
	mx := float64(a.margin) * a.tileSize.X
	my := float64(a.margin) * a.tileSize.Y
	p := item.Position
	return p.X >= a.position.X-a.viewport.X-mx && p.X <= a.position.X+a.viewport.X+mx &&
		p.Y >= a.position.Y-a.viewport.Y-my && p.Y <= a.position.Y+a.viewport.Y+my
}

// Render submits every visible item to canvas and returns how many were
// drawn.
func (a *Arena) Render(canvas Canvas, camera dmath.Vec2, tint color.Color) int {
	n := 0
	for _, item := range a.items {
		if !a.visible(item) {
			continue
		}
		canvas.Draw(item.DrawCommand(camera, tint))
		n++
	}
	return n
}

// CollidePlayer returns the first item, in grid order, whose collider
// accepts the screen-space shape.
func (a *Arena) CollidePlayer(shape gamemath.Rect) *Item {
	a.stats.Tested = 0

	world := shape.Translate(a.position.X, a.position.Y).Inset(1)
	probe := resolv.NewObject(world.X, world.Y, world.W, world.H)
	a.space.Add(probe)
	check := probe.Check(0, 0, tagTile)
	a.space.Remove(probe)
	if check == nil {
		return nil
	}

	var candidates []*Item
	seen := make(map[*Item]bool)
	for _, obj := range check.ObjectsByTags(tagTile) {
		item, ok := obj.Data.(*Item)
		if !ok || seen[item] || !a.visible(item) {
			continue
		}
		seen[item] = true
		candidates = append(candidates, item)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].order < candidates[j].order })

	for _, item := range candidates {
		a.stats.Tested++
		if !item.Collides(shape) {
			continue
		}
		if item.Kind == KindDefault && item.OnCollision != nil {
			item.OnCollision(item)
		}
		return item
	}
	return nil
}

// Object looks an item up by id.
func (a *Arena) Object(id int) *Item {
	for _, item := range a.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (a *Arena) Items() []*Item {
	return a.items
}

func (a *Arena) Stats() Stats {
	s := a.stats
	s.Items = len(a.items)
	return s
}

func (a *Arena) Position() dmath.Vec2 {
	return a.position
}

// SetPosition moves the scroll without ticking the items.
func (a *Arena) SetPosition(p dmath.Vec2) {
	a.position = p
	a.syncItems()
}

// Close releases the map's textures. The arena must not be rendered
// afterwards.
func (a *Arena) Close(textures leveldata.TextureSource) {
	if textures != nil {
		a.m.Release(textures)
	}
	for gid := range a.textures {
		delete(a.textures, gid)
	}
	for _, item := range a.items {
		item.Texture = nil
	}
}
