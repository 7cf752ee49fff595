// Package leveldata reads TMX level files into a flat tile grid plus the
// tilesets that give those tiles meaning.
package leveldata

import "github.com/automoto/geodash/assets"

// Tiled packs flip state into the high bits of every tile id.
const (
	FlipHorizontal uint32 = 1 << 31
	FlipVertical   uint32 = 1 << 30
	FlipDiagonal   uint32 = 1 << 29

	flagMask = FlipHorizontal | FlipVertical | FlipDiagonal
)

// Flips holds the three orthogonal flip flags of one placed tile.
type Flips struct {
	Horizontal bool
	Vertical   bool
	Diagonal   bool
}

// SplitGID separates a raw grid value into the tileset-relative global id
// and its flip flags.
func SplitGID(raw uint32) (uint32, Flips) {
	return raw &^ flagMask, Flips{
		Horizontal: raw&FlipHorizontal != 0,
		Vertical:   raw&FlipVertical != 0,
		Diagonal:   raw&FlipDiagonal != 0,
	}
}

// TileImage is one image entry of a tileset. Path is resolved against the
// file that declared it; Texture is filled once the map is loaded.
type TileImage struct {
	Width   int
	Height  int
	Source  string
	Path    string
	Texture *assets.Texture
}

type TileSet struct {
	Name       string
	FirstGID   uint32
	TileWidth  int
	TileHeight int
	TileCount  int
	Columns    int
	Padding    int
	FrameRate  float64 // frames per second from the "frameRate" property, 0 is static
	Images     []TileImage
}

// Texture returns the sheet used for the set's tiles, or nil.
func (ts *TileSet) Texture() *assets.Texture {
	if len(ts.Images) == 0 {
		return nil
	}
	return ts.Images[0].Texture
}

// TileGrid is a row-major grid of raw tile values; 0 is empty.
type TileGrid struct {
	Width  int
	Height int
	Cells  []uint32
}

func NewTileGrid(width, height int) TileGrid {
	return TileGrid{Width: width, Height: height, Cells: make([]uint32, width*height)}
}

// At returns the raw value at col,row, or 0 outside the grid.
func (g TileGrid) At(col, row int) uint32 {
	if col < 0 || row < 0 || col >= g.Width || row >= g.Height {
		return 0
	}
	return g.Cells[row*g.Width+col]
}

// NonZero counts occupied cells.
func (g TileGrid) NonZero() int {
	n := 0
	for _, c := range g.Cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Map is a fully loaded level: grid, tilesets and any warnings raised while
// substituting defaults.
type Map struct {
	Path       string
	Grid       TileGrid
	TileWidth  int
	TileHeight int
	TileSets   []TileSet
	Warnings   []string
}

// TextureSource hands out shared textures by path.
type TextureSource interface {
	Acquire(name string) (*assets.Texture, error)
	Release(name string)
}

// Release returns every texture the map acquired.
func (m *Map) Release(textures TextureSource) {
	for i := range m.TileSets {
		for j := range m.TileSets[i].Images {
			img := &m.TileSets[i].Images[j]
			if img.Texture == nil {
				continue
			}
			textures.Release(img.Path)
			img.Texture = nil
		}
	}
}
