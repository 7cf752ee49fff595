package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrTextureNotFound = errors.New("texture not found")

// Texture is a decoded image shared by every holder of the same key.
// The GPU copy is created on first draw so textures can be built and
// measured without a running game.
type Texture struct {
	key  string
	src  image.Image
	gpu  *ebiten.Image
	refs int
}

// NewTexture wraps an already decoded image. Mostly useful for tests and
// generated sprites.
func NewTexture(key string, img image.Image) *Texture {
	return &Texture{key: key, src: img}
}

func (t *Texture) Key() string {
	return t.key
}

// Size returns the pixel dimensions of the whole sheet.
func (t *Texture) Size() image.Point {
	return t.src.Bounds().Size()
}

func (t *Texture) Source() image.Image {
	return t.src
}

// Image returns the ebiten image, uploading on first use.
func (t *Texture) Image() *ebiten.Image {
	if t.gpu == nil {
		if img, ok := t.src.(*ebiten.Image); ok {
			t.gpu = img
		} else {
			t.gpu = ebiten.NewImageFromImage(t.src)
		}
	}
	return t.gpu
}

// Refs reports how many holders currently share the texture.
func (t *Texture) Refs() int {
	return t.refs
}

// Registry deduplicates textures by path and counts references, so a sheet
// shared by many tiles is decoded once and lives until its last holder
// releases it.
type Registry struct {
	fsys     fs.FS
	textures map[string]*Texture
}

func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:     fsys,
		textures: make(map[string]*Texture),
	}
}

// Acquire returns the texture at name, decoding it on first request, and
// takes a reference that must be handed back with Release.
func (r *Registry) Acquire(name string) (*Texture, error) {
	if tex, ok := r.textures[name]; ok {
		tex.refs++
		return tex, nil
	}

	f, err := r.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTextureNotFound, name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", name, err)
	}

	tex := &Texture{key: name, src: img, refs: 1}
	r.textures[name] = tex
	return tex, nil
}

// Put registers an in-memory texture under name with one reference.
func (r *Registry) Put(name string, img image.Image) *Texture {
	if tex, ok := r.textures[name]; ok {
		tex.refs++
		return tex
	}
	tex := &Texture{key: name, src: img, refs: 1}
	r.textures[name] = tex
	return tex
}

// MustAcquire panics when the texture cannot be loaded.
func (r *Registry) MustAcquire(name string) *Texture {
	tex, err := r.Acquire(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load texture %s: %v", name, err))
	}
	return tex
}

// Release drops one reference and evicts the texture when none remain.
func (r *Registry) Release(name string) {
	tex, ok := r.textures[name]
	if !ok {
		log.Printf("Warning: release of unknown texture %s", name)
		return
	}
	tex.refs--
	if tex.refs > 0 {
		return
	}
	if tex.gpu != nil {
		tex.gpu.Deallocate()
	}
	delete(r.textures, name)
}

// Len reports the number of live textures.
func (r *Registry) Len() int {
	return len(r.textures)
}
