package arena

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/config"
	"github.com/automoto/geodash/shared/gamemath"
	"github.com/automoto/geodash/shared/leveldata"
	dmath "github.com/yohamta/donburi/features/math"
)

func testConfig() config.ArenaConfig {
	return config.ArenaConfig{
		ScrollSpeedX:    250,
		SpawnRowsAbove:  10,
		CullMarginTiles: 2,
		DefaultTileSize: 64,
	}
}

func tileSet(name string, first uint32, count, columns int) leveldata.TileSet {
	return leveldata.TileSet{
		Name:       name,
		FirstGID:   first,
		TileWidth:  64,
		TileHeight: 64,
		TileCount:  count,
		Columns:    columns,
	}
}

func testMap(width, height int, cells []uint32, sets ...leveldata.TileSet) *leveldata.Map {
	grid := leveldata.NewTileGrid(width, height)
	copy(grid.Cells, cells)
	if len(sets) == 0 {
		sets = []leveldata.TileSet{tileSet("Default", 1, 1, 1)}
	}
	return &leveldata.Map{Grid: grid, TileWidth: 64, TileHeight: 64, TileSets: sets}
}

func mustNew(t *testing.T, m *leveldata.Map, opts ...Option) *Arena {
	t.Helper()
	a, err := New(m, testConfig(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

type recordingCanvas struct {
	cmds []DrawCommand
}

func (c *recordingCanvas) Draw(cmd DrawCommand) {
	c.cmds = append(c.cmds, cmd)
}

func TestLoadedMapBuildsOneItem(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<map width="2" height="1" tilewidth="64" tileheight="64">
 <tileset firstgid="1" name="Default" tilewidth="64" tileheight="64" tilecount="1" columns="1">
  <image source="tiles.png" width="64" height="64"/>
 </tileset>
 <layer id="1" name="main" width="2" height="1"><data encoding="csv">1,0</data></layer>
</map>`
	m, err := leveldata.Load(fstest.MapFS{"a.tmx": {Data: []byte(doc)}}, "a.tmx", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	a := mustNew(t, m)
	items := a.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Position != (dmath.Vec2{}) || items[0].ID != 1 {
		t.Errorf("item = id %d at %v", items[0].ID, items[0].Position)
	}
	if items[0].Kind != KindDefault || items[0].Collider.Kind != gamemath.ColliderBox {
		t.Errorf("kind %v collider %v", items[0].Kind, items[0].Collider.Kind)
	}
}

func TestBuildOrderBottomRowFirst(t *testing.T) {
	a := mustNew(t, testMap(2, 2, []uint32{1, 1, 1, 0}))

	want := []dmath.Vec2{{X: 0, Y: 64}, {X: 0, Y: 0}, {X: 64, Y: 0}}
	items := a.Items()
	if len(items) != len(want) {
		t.Fatalf("items = %d, want %d", len(items), len(want))
	}
	for i, item := range items {
		if item.Position != want[i] {
			t.Errorf("item %d at %v, want %v", i, item.Position, want[i])
		}
		if item.ID != i+1 {
			t.Errorf("item %d id = %d", i, item.ID)
		}
	}
}

func TestTileSetResolution(t *testing.T) {
	// Deliberately unsorted; New sorts by FirstGID.
	sets := []leveldata.TileSet{
		tileSet("TinySpikes", 9, 4, 4),
		tileSet("Default", 1, 4, 4),
		tileSet("Spikes", 5, 4, 4),
	}
	tests := []struct {
		gid   uint32
		kind  Kind
		frame int
	}{
		{1, KindDefault, 0},
		{4, KindDefault, 3},
		{5, KindTallSpike, 0},
		{8, KindTallSpike, 3},
		{9, KindSmallSpike, 0},
		{12, KindSmallSpike, 3},
		{40, KindSmallSpike, 31}, // last range is open-ended
	}
	for _, tt := range tests {
		a := mustNew(t, testMap(1, 1, []uint32{tt.gid}, sets...))
		item := a.Items()[0]
		if item.Kind != tt.kind || item.Anim.Frame() != tt.frame {
			t.Errorf("gid %d: kind %v frame %d, want %v frame %d",
				tt.gid, item.Kind, item.Anim.Frame(), tt.kind, tt.frame)
		}
	}
}

func TestUnresolvedTile(t *testing.T) {
	_, err := New(testMap(1, 1, []uint32{2}, tileSet("Default", 3, 1, 1)), testConfig())
	if !errors.Is(err, ErrUnresolvedTile) {
		t.Fatalf("err = %v, want ErrUnresolvedTile", err)
	}
}

func TestUnknownTileSetWarns(t *testing.T) {
	a := mustNew(t, testMap(1, 1, []uint32{1}, tileSet("Bricks", 1, 1, 1)))
	if len(a.Warnings) != 1 {
		t.Errorf("warnings = %q", a.Warnings)
	}
	if a.Items()[0].Kind != KindDefault {
		t.Errorf("kind = %v", a.Items()[0].Kind)
	}
}

func TestFlipFlagsCarryOver(t *testing.T) {
	raw := 1 | leveldata.FlipHorizontal | leveldata.FlipDiagonal
	a := mustNew(t, testMap(1, 1, []uint32{raw}))
	item := a.Items()[0]

	want := leveldata.Flips{Horizontal: true, Diagonal: true}
	if item.Flips != want {
		t.Errorf("flips = %+v, want %+v", item.Flips, want)
	}
	if item.Anim.Frame() != 0 {
		t.Errorf("frame = %d, flip bits leaked into the id", item.Anim.Frame())
	}
}

func TestFlipTransform(t *testing.T) {
	size := dmath.Vec2{X: 64, Y: 64}
	tests := []struct {
		name  string
		flips leveldata.Flips
		in    dmath.Vec2
		want  dmath.Vec2
	}{
		{"none", leveldata.Flips{}, dmath.Vec2{X: 10, Y: 5}, dmath.Vec2{X: 10, Y: 5}},
		{"horizontal", leveldata.Flips{Horizontal: true}, dmath.Vec2{X: 10, Y: 5}, dmath.Vec2{X: 54, Y: 5}},
		{"vertical", leveldata.Flips{Vertical: true}, dmath.Vec2{X: 10, Y: 5}, dmath.Vec2{X: 10, Y: 59}},
		{"diagonal", leveldata.Flips{Diagonal: true}, dmath.Vec2{X: 10, Y: 5}, dmath.Vec2{X: 5, Y: 10}},
		// Diagonal then horizontal is a clockwise quarter turn.
		{"rotate cw", leveldata.Flips{Diagonal: true, Horizontal: true}, dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{X: 64, Y: 0}},
		{"both", leveldata.Flips{Horizontal: true, Vertical: true}, dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{X: 64, Y: 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flipTransform(tt.flips, size).Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResetPos(t *testing.T) {
	tests := []struct {
		name  string
		cells []uint32
		want  float64
	}{
		{"top row", []uint32{1, 0, 0}, -10 * 64},
		{"bottom row", []uint32{0, 0, 1}, -8 * 64},
		{"empty", []uint32{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustNew(t, testMap(1, 3, tt.cells))
			a.SetPosition(dmath.Vec2{X: 500, Y: 500})
			a.ResetPos()
			if got := a.Position(); got.X != 0 || got.Y != tt.want {
				t.Errorf("Position = %v, want (0, %v)", got, tt.want)
			}
		})
	}
}

func TestUpdateScrollsItems(t *testing.T) {
	a := mustNew(t, testMap(2, 1, []uint32{1, 1}))
	a.SetPosition(dmath.Vec2{})
	a.Update(0.5)

	if got := a.Position(); got.X != 125 || got.Y != 0 {
		t.Fatalf("Position = %v, want (125, 0)", got)
	}
	for _, item := range a.Items() {
		if item.Relative() != a.Position() {
			t.Errorf("item %d relative = %v", item.ID, item.Relative())
		}
	}
	if got := a.Items()[1].ScreenPosition(); got.X != 64-125 {
		t.Errorf("ScreenPosition = %v", got)
	}
}

func TestUpdateZeroDtIsIdempotent(t *testing.T) {
	ts := tileSet("Default", 1, 4, 4)
	ts.FrameRate = 10
	a := mustNew(t, testMap(2, 1, []uint32{1, 2}, ts))

	a.Update(0)
	pos := a.Position()
	frames := []int{a.Items()[0].Anim.Frame(), a.Items()[1].Anim.Frame()}
	for i := 0; i < 5; i++ {
		a.Update(0)
	}
	if a.Position() != pos {
		t.Errorf("Position moved: %v -> %v", pos, a.Position())
	}
	for i, item := range a.Items() {
		if item.Anim.Frame() != frames[i] {
			t.Errorf("item %d frame %d -> %d", i, frames[i], item.Anim.Frame())
		}
	}
}

func TestAnimatedTileSet(t *testing.T) {
	ts := tileSet("Spikes", 1, 4, 4)
	ts.FrameRate = 10
	a := mustNew(t, testMap(1, 1, []uint32{2}, ts))
	item := a.Items()[0]

	if item.Anim.Frame() != 1 || item.Collider.Orientation != gamemath.OrientDown {
		t.Fatalf("start frame %d orientation %v", item.Anim.Frame(), item.Collider.Orientation)
	}
	a.Update(0.1)
	if item.Anim.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", item.Anim.Frame())
	}
	if item.Collider.Orientation != gamemath.OrientLeft {
		t.Errorf("orientation = %v, want left", item.Collider.Orientation)
	}
	a.Update(0.1)
	a.Update(0.1)
	if item.Anim.Frame() != 0 {
		t.Errorf("frame = %d, want wrap to 0", item.Anim.Frame())
	}
}

func TestStaticItemsDoNotAnimate(t *testing.T) {
	a := mustNew(t, testMap(1, 1, []uint32{3}, tileSet("Default", 1, 4, 4)))
	a.Update(10)
	if f := a.Items()[0].Anim.Frame(); f != 2 {
		t.Errorf("frame = %d, want 2", f)
	}
}

func TestOnUpdateRuns(t *testing.T) {
	a := mustNew(t, testMap(1, 1, []uint32{1}))
	var got float64
	a.Items()[0].OnUpdate = func(item *Item, dt float64) { got += dt }
	a.Update(0.25)
	a.Update(0.25)
	if got != 0.5 {
		t.Errorf("OnUpdate saw %v seconds, want 0.5", got)
	}
}

func TestRenderCullBoundary(t *testing.T) {
	// Window half-width is viewport 100 plus two 64px tiles.
	const reach = 100 + 2*64
	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"left edge inclusive", reach, 1},
		{"left edge plus one", reach + 1, 0},
		{"right edge inclusive", -reach, 1},
		{"right edge plus one", -reach - 1, 0},
		{"centered", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustNew(t, testMap(1, 1, []uint32{1}), WithViewport(100, 100))
			a.SetPosition(dmath.Vec2{X: tt.x})
			canvas := &recordingCanvas{}
			if got := a.Render(canvas, dmath.Vec2{}, color.White); got != tt.want {
				t.Errorf("Render = %d, want %d", got, tt.want)
			}
			if len(canvas.cmds) != tt.want {
				t.Errorf("draw commands = %d, want %d", len(canvas.cmds), tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	ts := tileSet("Default", 1, 4, 2)
	ts.Padding = 2
	a := mustNew(t, testMap(2, 1, []uint32{0, 4}, ts))
	a.SetPosition(dmath.Vec2{X: 10})
	a.Update(0)

	canvas := &recordingCanvas{}
	a.Render(canvas, dmath.Vec2{Y: 30}, color.White)
	if len(canvas.cmds) != 1 {
		t.Fatalf("draw commands = %d", len(canvas.cmds))
	}
	cmd := canvas.cmds[0]
	if want := image.Rect(66, 66, 130, 130); cmd.Src != want {
		t.Errorf("Src = %v, want %v", cmd.Src, want)
	}
	if got := cmd.Transform.Apply(dmath.Vec2{}); got != (dmath.Vec2{X: 54, Y: 30}) {
		t.Errorf("origin drawn at %v, want (54, 30)", got)
	}
	if a.Items()[0].Relative().X != 10 {
		t.Error("render changed item state")
	}
}

func TestFrameLayout(t *testing.T) {
	tests := []struct {
		count, columns int
		want           image.Point
	}{
		{0, 0, image.Pt(1, 1)},
		{4, 4, image.Pt(4, 1)},
		{7, 3, image.Pt(3, 3)},
		{0, 2, image.Pt(2, 1)},
	}
	for _, tt := range tests {
		ts := tileSet("Default", 1, tt.count, tt.columns)
		if got := frameLayout(&ts); got != tt.want {
			t.Errorf("frameLayout(%d, %d) = %v, want %v", tt.count, tt.columns, got, tt.want)
		}
	}
}

func TestCollidePlayer(t *testing.T) {
	tests := []struct {
		name   string
		shape  gamemath.Rect
		hit    bool
		tested int
	}{
		{"inside", gamemath.NewRect(10, 10, 20, 20), true, 1},
		{"touching edge", gamemath.NewRect(64, 10, 20, 20), false, 1},
		{"far away", gamemath.NewRect(300, 10, 20, 20), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustNew(t, testMap(6, 1, []uint32{1, 0, 0, 0, 0, 0}))
			a.SetPosition(dmath.Vec2{})
			a.Update(0)

			fired := 0
			a.Items()[0].OnCollision = func(*Item) { fired++ }

			got := a.CollidePlayer(tt.shape)
			if (got != nil) != tt.hit {
				t.Fatalf("CollidePlayer = %v, want hit %v", got, tt.hit)
			}
			wantFired := 0
			if tt.hit {
				wantFired = 1
			}
			if fired != wantFired {
				t.Errorf("OnCollision fired %d times, want %d", fired, wantFired)
			}
			if s := a.Stats(); s.Tested != tt.tested || s.Items != 1 {
				t.Errorf("Stats = %+v, want tested %d", s, tt.tested)
			}
		})
	}
}

func TestCollidePlayerGridOrder(t *testing.T) {
	a := mustNew(t, testMap(2, 2, []uint32{1, 1, 1, 1}))
	a.SetPosition(dmath.Vec2{})
	a.Update(0)

	// Overlaps all four tiles; the bottom-left one was built first.
	got := a.CollidePlayer(gamemath.NewRect(32, 32, 64, 64))
	if got == nil || got.ID != 1 || got.Position != (dmath.Vec2{X: 0, Y: 64}) {
		t.Fatalf("CollidePlayer = %+v, want item 1 at (0, 64)", got)
	}
}

func TestCollidePlayerScrolled(t *testing.T) {
	a := mustNew(t, testMap(3, 1, []uint32{0, 1, 0}))
	a.SetPosition(dmath.Vec2{X: 64})
	a.Update(0)

	got := a.CollidePlayer(gamemath.NewRect(10, 10, 20, 20))
	if got == nil || got.Position.X != 64 {
		t.Fatalf("CollidePlayer = %v, want the tile at x=64", got)
	}
	if got.Relative().X != 64 {
		t.Errorf("relative = %v", got.Relative())
	}
}

func TestCollidePlayerBeforeUpdate(t *testing.T) {
	cells := make([]uint32, 12)
	cells[11] = 1
	a := mustNew(t, testMap(1, 12, cells))
	if got := a.Position(); got.Y != 64 {
		t.Fatalf("Position = %v, want (0, 64)", got)
	}

	item := a.Items()[0]
	screen := item.ScreenPosition()
	if screen.Y != 11*64-64 {
		t.Errorf("ScreenPosition = %v, want y=%v", screen, 11*64-64)
	}
	if got := a.CollidePlayer(gamemath.NewRect(screen.X, screen.Y, 64, 64)); got != item {
		t.Errorf("CollidePlayer right after New = %v, want the tile", got)
	}

	a.SetPosition(dmath.Vec2{Y: 128})
	if item.Relative() != a.Position() {
		t.Errorf("relative after SetPosition = %v", item.Relative())
	}
	if got := a.CollidePlayer(gamemath.NewRect(0, 576, 64, 64)); got != item {
		t.Errorf("CollidePlayer after SetPosition = %v, want the tile", got)
	}
}

func TestSpikeHitsSkipOnCollision(t *testing.T) {
	a := mustNew(t, testMap(1, 1, []uint32{1}, tileSet("Spikes", 1, 4, 4)))
	a.SetPosition(dmath.Vec2{})
	a.Update(0)

	fired := false
	a.Items()[0].OnCollision = func(*Item) { fired = true }
	got := a.CollidePlayer(gamemath.NewRect(24, 24, 16, 16))
	if got == nil || got.Kind != KindTallSpike {
		t.Fatalf("CollidePlayer = %v, want the spike", got)
	}
	if fired {
		t.Error("OnCollision fired for a spike")
	}
}

func TestExactSpikes(t *testing.T) {
	cfg := testConfig()
	cfg.ExactSpikes = true
	a, err := New(testMap(1, 1, []uint32{1}, tileSet("TinySpikes", 1, 4, 4)), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := a.Items()[0].Collider
	if c.Kind != gamemath.ColliderTriangle {
		t.Fatalf("collider = %v, want triangle", c.Kind)
	}
	// Small upward spike sits in the lower half.
	if b := c.Bounds(); b.Y != 32 || b.H != 32 {
		t.Errorf("bounds = %+v", b)
	}
}

func TestObject(t *testing.T) {
	a := mustNew(t, testMap(3, 1, []uint32{1, 1, 1}))
	if item := a.Object(2); item == nil || item.Position.X != 64 {
		t.Errorf("Object(2) = %v", item)
	}
	if a.Object(99) != nil {
		t.Error("Object(99) found something")
	}
}

type countingTextures struct {
	released map[string]int
}

func (c *countingTextures) Acquire(name string) (*assets.Texture, error) {
	return assets.NewTexture(name, image.NewRGBA(image.Rect(0, 0, 64, 64))), nil
}

func (c *countingTextures) Release(name string) {
	c.released[name]++
}

func TestCloseReleasesTextures(t *testing.T) {
	ts := tileSet("Default", 1, 1, 1)
	ts.Images = []leveldata.TileImage{{
		Path:    "levels/tiles.png",
		Texture: assets.NewTexture("levels/tiles.png", image.NewRGBA(image.Rect(0, 0, 64, 64))),
	}}
	a := mustNew(t, testMap(2, 1, []uint32{1, 1}, ts))
	if a.Items()[0].Texture == nil || a.Items()[0].Texture != a.Items()[1].Texture {
		t.Fatal("items do not share the tileset texture")
	}

	textures := &countingTextures{released: map[string]int{}}
	a.Close(textures)
	if textures.released["levels/tiles.png"] != 1 {
		t.Errorf("released = %v", textures.released)
	}
	if a.Items()[0].Texture != nil {
		t.Error("item still holds a texture")
	}
}
