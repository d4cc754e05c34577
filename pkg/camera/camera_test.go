package camera

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnholt/sahtrace/pkg/core"
)

func basicConfig() Config {
	return Config{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       200,
		AspectRatio: 2,
		VFov:        90,
	}
}

func TestImageDimensionsFollowAspectRatio(t *testing.T) {
	cam := New(basicConfig())
	assert.Equal(t, 200, cam.ImageWidth)
	assert.Equal(t, 100, cam.ImageHeight)
}

func TestCenterRayPointsTowardLookAt(t *testing.T) {
	cfg := basicConfig()
	cfg.Aperture = 0
	cam := New(cfg)
	rng := rand.New(rand.NewSource(1))

	r := cam.GetRay(0.5, 0.5, rng)
	dir := r.Direction.Normalize()
	assert.InDelta(t, 0.0, float64(dir.X), 1e-3)
	assert.InDelta(t, 0.0, float64(dir.Y), 1e-3)
	assert.Less(t, dir.Z, float32(0))
}

func TestMergeOverridesOnlySetFields(t *testing.T) {
	base := basicConfig()
	override := Config{VFov: 40}
	merged := Merge(base, override)
	assert.Equal(t, float32(40), merged.VFov)
	assert.Equal(t, base.Width, merged.Width)
}

func TestShutterJitterStaysWithinWindow(t *testing.T) {
	cfg := basicConfig()
	cfg.ShutterOpen = 0
	cfg.ShutterClose = 1
	cam := New(cfg)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		r := cam.GetRay(0.5, 0.5, rng)
		assert.GreaterOrEqual(t, r.Time, float32(0))
		assert.LessOrEqual(t, r.Time, float32(1))
	}
}
