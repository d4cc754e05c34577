package renderer

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arnholt/sahtrace/pkg/scene"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestRenderProducesNonZeroImage(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sc, err := scene.Build(scene.MaterialDev, 16, rng)
	require.NoError(t, err)

	img, stats, err := Render(context.Background(), sc, Config{
		SamplesPerPixel: 4,
		MaxDepth:        8,
		Seed:            7,
		Workers:         2,
	}, testLogger())
	require.NoError(t, err)
	assert.Equal(t, sc.Camera.ImageWidth, stats.Width)
	assert.Equal(t, sc.Camera.ImageHeight, stats.Height)

	sawColor := false
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if c := img.Average(x, y); c.X != 0 || c.Y != 0 || c.Z != 0 {
				sawColor = true
			}
		}
	}
	assert.True(t, sawColor)
}

func TestRenderIsDeterministicForFixedSeed(t *testing.T) {
	run := func() *Image {
		rng := rand.New(rand.NewSource(1))
		sc, err := scene.Build(scene.TwoSpheres, 12, rng)
		require.NoError(t, err)
		img, _, err := Render(context.Background(), sc, Config{
			SamplesPerPixel: 3,
			MaxDepth:        4,
			Seed:            99,
			Workers:         1,
		}, testLogger())
		require.NoError(t, err)
		return img
	}

	a := run()
	b := run()
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			assert.Equal(t, a.Average(x, y), b.Average(x, y))
		}
	}
}
