package imageio

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnholt/sahtrace/pkg/core"
	"github.com/arnholt/sahtrace/pkg/renderer"
)

func sampleImage() *renderer.Image {
	img := renderer.NewImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.AddSample(x, y, core.NewVec3(0.5, 0.25, 0.75))
		}
	}
	return img
}

func TestWritePNGRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	require.NoError(t, Write(path, sampleImage()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
}

func TestWritePFMHasLinearHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pfm")
	require.NoError(t, Write(path, sampleImage()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data[:20]), "PF")
}

func TestIsHDRDetectsExtension(t *testing.T) {
	assert.True(t, IsHDR("scene.pfm"))
	assert.False(t, IsHDR("scene.png"))
}

func TestSupportedExt(t *testing.T) {
	assert.True(t, SupportedExt("a.png"))
	assert.True(t, SupportedExt("a.jpg"))
	assert.False(t, SupportedExt("a.txt"))
}
