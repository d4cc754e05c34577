package scene

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arnholt/sahtrace/pkg/material"
)

// AssetsDir is where scene builders look for texture resources (the
// earth scene's earthmap.jpg). It can be overridden in tests.
var AssetsDir = "assets"

// Logger receives the resource-load-failure warning. It defaults to a
// no-op so package-level tests don't need to wire one up; main.go
// replaces it with the CLI's real logger before building a scene.
var Logger = zap.NewNop().Sugar()

// loadImageTexture opens and decodes a texture resource by name. On any
// failure the caller falls back to material.NewFallbackTexture, per
// the resource-load-failure policy: log a warning and substitute a
// visible default rather than aborting the render.
func loadImageTexture(name string) (material.Texture, error) {
	f, err := os.Open(filepath.Join(AssetsDir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return material.NewImageTexture(img), nil
}

// textureOrFallback wraps loadImageTexture with the logging half of the
// resource-load-failure policy, shared by every scene builder that
// references an image texture.
func textureOrFallback(name string) material.Texture {
	tex, err := loadImageTexture(name)
	if err != nil {
		Logger.Warnw("texture load failed, using fallback", "name", name, "error", err)
		return material.NewFallbackTexture()
	}
	return tex
}
