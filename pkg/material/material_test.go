package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnholt/sahtrace/pkg/core"
)

func upwardHit() core.HitRecord {
	var hr core.HitRecord
	hr.Point = core.NewVec3(0, 1, 0)
	hr.Normal = core.NewVec3(0, 1, 0)
	hr.FrontFace = true
	return hr
}

func TestLambertianScatterStaysInHemisphere(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lam := NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	hr := upwardHit()
	rIn := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0)

	for i := 0; i < 50; i++ {
		res, ok := lam.Scatter(rIn, hr, rng)
		require.True(t, ok)
		assert.Equal(t, core.NewVec3(0.5, 0.5, 0.5), res.Attenuation)
		assert.GreaterOrEqual(t, res.Scattered.Direction.Dot(hr.Normal), float32(0))
	}
}

func TestLambertianDegenerateDirectionFallsBackToNormal(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	lam := NewLambertianColor(core.NewVec3(1, 1, 1))
	hr := upwardHit()
	// The rng can't be forced to draw exactly -Normal, so verify the
	// near-zero guard directly on that edge case: Normal plus its own
	// negation is the direction the guard replaces with Normal.
	dir := hr.Normal.Add(hr.Normal.Neg())
	assert.True(t, dir.NearZero())

	// Whatever the rng draws, Scatter never returns a degenerate direction.
	res, ok := lam.Scatter(core.Ray{}, hr, rng)
	require.True(t, ok)
	assert.False(t, res.Scattered.Direction.NearZero())
}

func TestMetalAbsorbsGrazingReflection(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m := NewMetal(core.NewVec3(1, 1, 1), 0)
	hr := upwardHit()
	// A ray parallel to the surface reflects to exactly grazing; bump
	// the incoming direction so the reflection points below the normal.
	rIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0.001, 0), 0)
	_, ok := m.Scatter(rIn, hr, rng)
	assert.False(t, ok)
}

func TestDiffuseLightEmitsAndNeverScatters(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	dl := NewDiffuseLightColor(core.NewVec3(1, 1, 1), 4)
	hr := upwardHit()
	_, ok := dl.Scatter(core.Ray{}, hr, rng)
	assert.False(t, ok)
	assert.Equal(t, core.NewVec3(4, 4, 4), dl.Emit(0, 0, core.Vec3{}))
}

func TestOtherMaterialsEmitNothing(t *testing.T) {
	assert.Equal(t, core.Vec3{}, NewLambertianColor(core.NewVec3(1, 1, 1)).Emit(0, 0, core.Vec3{}))
	assert.Equal(t, core.Vec3{}, NewMetal(core.NewVec3(1, 1, 1), 0).Emit(0, 0, core.Vec3{}))
	assert.Equal(t, core.Vec3{}, NewDielectric(1.5).Emit(0, 0, core.Vec3{}))
	assert.Equal(t, core.Vec3{}, NewIsotropicColor(core.NewVec3(1, 1, 1)).Emit(0, 0, core.Vec3{}))
}

func TestCheckeredTextureAlternates(t *testing.T) {
	c := NewCheckeredColors(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	a := c.Value(0, 0, core.NewVec3(0.1, 0.1, 0.1))
	b := c.Value(0, 0, core.NewVec3(0.4, 0.1, 0.1))
	assert.NotEqual(t, a, b)
}
