package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:levels all:images
	assetFS embed.FS
)

// FS exposes the embedded level and image tree. Paths are slash separated
// and rooted at this package, e.g. "levels/level1.tmx".
func FS() fs.FS {
	return assetFS
}
