package leveldata

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strconv"
)

var (
	ErrMalformed        = errors.New("malformed map")
	ErrMissingAttribute = errors.New("missing attribute")
	ErrEncoding         = errors.New("unsupported layer encoding")
	ErrOverflow         = errors.New("layer data exceeds map size")
	ErrNoTileset        = errors.New("map has no tileset")
	ErrTexture          = errors.New("tileset texture")
)

// DefaultTileSize replaces a missing or invalid map tile dimension.
const DefaultTileSize = 64

// node is a generic XML element. Attribute presence matters to the loader,
// so elements are kept raw instead of decoded into typed structs.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
	Text     string     `xml:",chardata"`
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// attrInt returns false when the attribute is absent or not an integer.
func (n *node) attrInt(name string) (int, bool) {
	s, ok := n.attr(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (n *node) child(name string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

type loader struct {
	fsys fs.FS
	path string
	m    *Map
}

func (l *loader) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("Warning: %s: %s", l.path, msg)
	l.m.Warnings = append(l.m.Warnings, msg)
}

func readNode(fsys fs.FS, p string) (*node, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, p, err)
	}
	return &root, nil
}

// Load parses the TMX file at mapPath inside fsys and acquires every
// tileset image from textures. Paths inside the map are resolved against
// the map's directory. Recoverable problems are logged and collected in
// Map.Warnings; anything else aborts the load and releases what was taken.
// A nil textures skips image resolution.
func Load(fsys fs.FS, mapPath string, textures TextureSource) (*Map, error) {
	root, err := readNode(fsys, mapPath)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", mapPath, err)
	}

	l := &loader{fsys: fsys, path: mapPath, m: &Map{Path: mapPath}}
	if err := l.parseMap(root); err != nil {
		return nil, fmt.Errorf("load map %s: %w", mapPath, err)
	}

	if textures != nil {
		if err := l.resolveTextures(textures); err != nil {
			l.m.Release(textures)
			return nil, fmt.Errorf("load map %s: %w", mapPath, err)
		}
	}

	return l.m, nil
}

func (l *loader) parseMap(root *node) error {
	if root.XMLName.Local != "map" {
		return fmt.Errorf("%w: root element is %q, want \"map\"", ErrMalformed, root.XMLName.Local)
	}

	width, ok := root.attrInt("width")
	if !ok {
		return fmt.Errorf("%w: map width", ErrMissingAttribute)
	}
	height, ok := root.attrInt("height")
	if !ok {
		return fmt.Errorf("%w: map height", ErrMissingAttribute)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: map size %dx%d", ErrMalformed, width, height)
	}

	l.m.TileWidth = l.tileDimension(root, "tilewidth")
	l.m.TileHeight = l.tileDimension(root, "tileheight")
	l.m.Grid = NewTileGrid(width, height)

	layers := 0
	for i := range root.Children {
		child := &root.Children[i]
		switch child.XMLName.Local {
		case "tileset":
			ts, err := l.parseTileSet(child)
			if err != nil {
				return err
			}
			l.m.TileSets = append(l.m.TileSets, ts)
		case "layer":
			if err := l.parseLayer(child); err != nil {
				return err
			}
			layers++
		}
	}

	if len(l.m.TileSets) == 0 {
		return ErrNoTileset
	}
	if layers == 0 {
		l.warnf("map has no tile layers")
	}
	return nil
}

func (l *loader) tileDimension(n *node, name string) int {
	v, ok := n.attrInt(name)
	if !ok || v <= 0 {
		l.warnf("map %s missing or invalid, using %d", name, DefaultTileSize)
		return DefaultTileSize
	}
	return v
}

func (l *loader) parseTileSet(n *node) (TileSet, error) {
	var ts TileSet

	firstGID, ok := n.attrInt("firstgid")
	if !ok {
		return ts, fmt.Errorf("%w: tileset firstgid", ErrMissingAttribute)
	}
	if firstGID < 1 {
		return ts, fmt.Errorf("%w: tileset firstgid %d", ErrMalformed, firstGID)
	}
	ts.FirstGID = uint32(firstGID)

	// External tilesets keep only firstgid in the map; everything else is
	// read from the .tsx next to it.
	def, dir := n, path.Dir(l.path)
	if src, ok := n.attr("source"); ok {
		tsxPath := path.Join(dir, src)
		ext, err := readNode(l.fsys, tsxPath)
		if err != nil {
			return ts, fmt.Errorf("tileset %s: %w", src, err)
		}
		if ext.XMLName.Local != "tileset" {
			return ts, fmt.Errorf("%w: %s root is %q, want \"tileset\"", ErrMalformed, tsxPath, ext.XMLName.Local)
		}
		def, dir = ext, path.Dir(tsxPath)
	}

	name, ok := def.attr("name")
	if !ok {
		l.warnf("tileset with firstgid %d has no name", firstGID)
	}
	ts.Name = name

	if ts.TileWidth, ok = def.attrInt("tilewidth"); !ok {
		l.warnf("tileset %q missing tilewidth, using %d", name, l.m.TileWidth)
		ts.TileWidth = l.m.TileWidth
	}
	if ts.TileHeight, ok = def.attrInt("tileheight"); !ok {
		l.warnf("tileset %q missing tileheight, using %d", name, l.m.TileHeight)
		ts.TileHeight = l.m.TileHeight
	}
	if ts.TileCount, ok = def.attrInt("tilecount"); !ok {
		l.warnf("tileset %q missing tilecount, animation disabled", name)
	}
	if ts.Columns, ok = def.attrInt("columns"); !ok {
		l.warnf("tileset %q missing columns, animation disabled", name)
	}
	if ts.Padding, ok = def.attrInt("padding"); !ok {
		ts.Padding, _ = def.attrInt("spacing")
	}

	if raw, ok := property(def, "frameRate"); ok {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 {
			l.warnf("tileset %q has invalid frameRate %q", name, raw)
		} else {
			ts.FrameRate = rate
		}
	}

	for i := range def.Children {
		img := &def.Children[i]
		if img.XMLName.Local != "image" {
			continue
		}
		w, _ := img.attrInt("width")
		h, _ := img.attrInt("height")
		src, ok := img.attr("source")
		if !ok {
			l.warnf("tileset %q has an image without source", name)
		}
		ts.Images = append(ts.Images, TileImage{
			Width:  w,
			Height: h,
			Source: src,
			Path:   path.Join(dir, src),
		})
	}

	return ts, nil
}

// property returns the value of a named custom property of n.
func property(n *node, name string) (string, bool) {
	props := n.child("properties")
	if props == nil {
		return "", false
	}
	for i := range props.Children {
		p := &props.Children[i]
		if p.XMLName.Local != "property" {
			continue
		}
		if key, _ := p.attr("name"); key == name {
			return p.attr("value")
		}
	}
	return "", false
}

// parseLayer overlays a layer's non-empty cells onto the map grid.
func (l *loader) parseLayer(n *node) error {
	name, _ := n.attr("name")

	data := n.child("data")
	if data == nil {
		return fmt.Errorf("%w: layer %q has no data", ErrEncoding, name)
	}
	if enc, _ := data.attr("encoding"); enc != "csv" {
		return fmt.Errorf("%w: layer %q encoding %q", ErrEncoding, name, enc)
	}

	capacity := len(l.m.Grid.Cells)
	cells, n2, err := decodeCSV(data.Text, capacity)
	if err != nil {
		return fmt.Errorf("layer %q: %w", name, err)
	}
	if n2 < capacity {
		l.warnf("layer %q has %d cells, map expects %d", name, n2, capacity)
	}

	for i, v := range cells[:n2] {
		if v != 0 {
			l.m.Grid.Cells[i] = v
		}
	}
	return nil
}

func (l *loader) resolveTextures(textures TextureSource) error {
	for i := range l.m.TileSets {
		ts := &l.m.TileSets[i]
		for j := range ts.Images {
			img := &ts.Images[j]
			tex, err := textures.Acquire(img.Path)
			if err != nil {
				return fmt.Errorf("%w: tileset %q: %w", ErrTexture, ts.Name, err)
			}
			img.Texture = tex
		}
	}
	return nil
}
