package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnholt/sahtrace/pkg/core"
)

func TestBuildAllSceneTypes(t *testing.T) {
	AssetsDir = "testdata-does-not-exist" // forces the earth/final-scene image fallback path

	for _, ty := range All {
		t.Run(string(ty), func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			s, err := Build(ty, 100, rng)
			require.NoError(t, err)
			require.NotNil(t, s)
			require.NotNil(t, s.Camera)
			require.NotNil(t, s.World)
			assert.True(t, s.World.BoundingBox().IsValid())
		})
	}
}

func TestBuildUnknownSceneErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Build(Type("not-a-scene"), 100, rng)
	assert.Error(t, err)
}

func TestSceneTypeValid(t *testing.T) {
	assert.True(t, CoverPhoto.Valid())
	assert.False(t, Type("bogus").Valid())
}

func TestCameraHitsWorld(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s, err := Build(MaterialDev, 100, rng)
	require.NoError(t, err)

	r := s.Camera.GetRay(0.5, 0.5, rng)
	_, ok := s.World.Hit(r, 0.001, 1e6)
	assert.True(t, ok)
	_ = core.Vec3{}
}
