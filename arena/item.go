package arena

import (
	"image"
	"image/color"
	"log"

	"github.com/automoto/geodash/assets"
	"github.com/automoto/geodash/assets/animations"
	"github.com/automoto/geodash/shared/gamemath"
	"github.com/automoto/geodash/shared/leveldata"
	dmath "github.com/yohamta/donburi/features/math"
)

// Kind selects how an item collides.
type Kind int

const (
	KindDefault Kind = iota
	KindTallSpike
	KindSmallSpike
)

func (k Kind) String() string {
	switch k {
	case KindTallSpike:
		return "TallSpike"
	case KindSmallSpike:
		return "SmallSpike"
	default:
		return "Default"
	}
}

// Spike reports whether the kind kills on contact.
func (k Kind) Spike() bool {
	return k == KindTallSpike || k == KindSmallSpike
}

// KindFromTileSet maps a tileset name to an item kind. ok is false for
// unknown names, which fall back to KindDefault.
func KindFromTileSet(name string) (kind Kind, ok bool) {
	switch name {
	case "Spikes":
		return KindTallSpike, true
	case "TinySpikes":
		return KindSmallSpike, true
	case "Default", "SimpleTileSet":
		return KindDefault, true
	default:
		return KindDefault, false
	}
}

// Item is one placed tile. Its Position never changes after the build;
// the arena scroll is tracked as a shared relative offset instead.
type Item struct {
	ID       int
	Kind     Kind
	Texture  *assets.Texture
	Position dmath.Vec2 // absolute world position of the top-left corner
	Size     dmath.Vec2
	Flips    leveldata.Flips
	Sheet    image.Point // frame columns and rows of the texture
	Padding  int
	Anim     animations.Animation
	Collider gamemath.Collider

	// OnCollision runs when CollidePlayer returns this item. Only
	// KindDefault items fire it.
	OnCollision func(item *Item)
	OnUpdate    func(item *Item, dt float64)

	relative dmath.Vec2
	order    int
	exact    bool
}

func newItem(id, order int, kind Kind, pos, size dmath.Vec2, frame int, sheet image.Point, exact bool) (*Item, error) {
	item := &Item{
		ID:       id,
		Kind:     kind,
		Position: pos,
		Size:     size,
		Sheet:    sheet,
		Anim:     *animations.NewAnimation(frame, frame, sheet.X*sheet.Y, 0),
		order:    order,
		exact:    exact,
	}
	if err := item.buildCollider(); err != nil {
		return nil, err
	}
	return item, nil
}

// Bounds is the absolute tile rectangle.
func (i *Item) Bounds() gamemath.Rect {
	return gamemath.NewRect(i.Position.X, i.Position.Y, i.Size.X, i.Size.Y)
}

func (i *Item) buildCollider() error {
	var err error
	if !i.Kind.Spike() {
		i.Collider, err = gamemath.NewBoxCollider(i.Bounds())
		return err
	}

	o := gamemath.OrientationFromFrame(i.Anim.Frame())
	bounds := gamemath.SpikeBounds(i.Bounds(), o, i.Kind == KindSmallSpike)
	if !i.exact {
		i.Collider, err = gamemath.NewSpikeCollider(bounds, o)
		return err
	}
	tri, err := gamemath.SpikeTriangle(bounds, o)
	if err != nil {
		return err
	}
	i.Collider = gamemath.NewTriangleCollider(tri)
	return nil
}

// SetAnimation loops the item through frames first..last at rate frames
// per second.
func (i *Item) SetAnimation(first, last int, rate float64) {
	i.Anim.First = first
	i.Anim.Last = last
	i.Anim.FrameRate = rate
	i.Anim.Restart()
	i.refreshCollider()
}

// Relative is the arena scroll offset last applied to the item.
func (i *Item) Relative() dmath.Vec2 {
	return i.relative
}

// ScreenPosition is the item's position with the scroll offset removed.
func (i *Item) ScreenPosition() dmath.Vec2 {
	return dmath.Vec2{X: i.Position.X - i.relative.X, Y: i.Position.Y - i.relative.Y}
}

// Collides tests a screen-space shape against the item's collider.
func (i *Item) Collides(shape gamemath.Rect) bool {
	return i.Collider.Collides(shape.Translate(i.relative.X, i.relative.Y))
}

func (i *Item) update(relative dmath.Vec2, dt float64) {
	i.relative = relative

	before := i.Anim.Frame()
	i.Anim.Update(dt)
	if i.Anim.Frame() != before {
		i.refreshCollider()
	}

	if i.OnUpdate != nil {
		i.OnUpdate(i, dt)
	}
}

// refreshCollider rebuilds a spike collider whose orientation follows the
// current frame.
func (i *Item) refreshCollider() {
	if !i.Kind.Spike() {
		return
	}
	if err := i.buildCollider(); err != nil {
		log.Printf("Warning: item %d keeps its previous collider: %v", i.ID, err)
	}
}

// FrameRect is the source rectangle of the current frame on the sheet.
func (i *Item) FrameRect() image.Rectangle {
	cols := i.Sheet.X
	if cols < 1 {
		cols = 1
	}
	frame := i.Anim.Frame()
	col, row := frame%cols, frame/cols
	w, h := int(i.Size.X), int(i.Size.Y)
	x := col*w + i.Padding*col
	y := row*h + i.Padding*row
	return image.Rect(x, y, x+w, y+h)
}

// DrawCommand describes one item draw in screen space.
func (i *Item) DrawCommand(camera dmath.Vec2, tint color.Color) DrawCommand {
	pos := i.ScreenPosition()
	return DrawCommand{
		Texture:   i.Texture,
		Src:       i.FrameRect(),
		Transform: flipTransform(i.Flips, i.Size).Translate(pos.X+camera.X, pos.Y+camera.Y),
		Tint:      tint,
	}
}
