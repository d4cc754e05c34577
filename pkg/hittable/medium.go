package hittable

import (
	"math"
	"math/rand"
	"sync"

	"github.com/arnholt/sahtrace/pkg/core"
)

// ConstantMedium wraps a closed boundary hittable with a constant-density
// participating medium: a ray passing through the boundary has a
// probability of scattering isotropically at a random depth inside it,
// proportional to Density. It is always paired with an Isotropic
// material, the fifth material variant that otherwise goes unused.
//
// The Hittable contract (core.Hittable) has no room for a per-call RNG
// parameter, so a medium instance carries its own generator rather than
// one supplied by the caller. Since the same scene (and the same medium
// instances within it) is traversed by every render worker concurrently,
// access to that generator is serialized with mu: correctness, not
// per-worker independence, is the goal here, and it costs nothing on the
// scatter-probability hot path since density checks that miss the
// boundary never reach it.
type ConstantMedium struct {
	Boundary core.Hittable
	Density  float32
	Phase    core.Material

	mu  sync.Mutex
	rng *rand.Rand
}

func NewConstantMedium(boundary core.Hittable, density float32, phase core.Material, rng *rand.Rand) *ConstantMedium {
	// Seed a private generator from rng so that media built from the same
	// rng never share one *rand.Rand across different mutexes.
	own := rand.New(rand.NewSource(rng.Int63()))
	return &ConstantMedium{Boundary: boundary, Density: density, Phase: phase, rng: own}
}

func (c *ConstantMedium) randFloat64() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64()
}

func (c *ConstantMedium) BoundingBox() core.AABB {
	return c.Boundary.BoundingBox()
}

func (c *ConstantMedium) Hit(r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	hr1, ok := c.Boundary.Hit(r, float32(-1e30), float32(1e30))
	if !ok {
		return core.HitRecord{}, false
	}
	hr2, ok := c.Boundary.Hit(r, hr1.T+0.0001, float32(1e30))
	if !ok {
		return core.HitRecord{}, false
	}

	if hr1.T < tMin {
		hr1.T = tMin
	}
	if hr2.T > tMax {
		hr2.T = tMax
	}
	if hr1.T >= hr2.T {
		return core.HitRecord{}, false
	}
	if hr1.T < 0 {
		hr1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (hr2.T - hr1.T) * rayLength
	hitDistance := float32(-1/c.Density) * float32(math.Log(c.randFloat64()))
	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := hr1.T + hitDistance/rayLength
	var hr core.HitRecord
	hr.T = t
	hr.Point = r.At(t)
	hr.Normal = core.NewVec3(1, 0, 0) // arbitrary: isotropic scatter ignores it
	hr.FrontFace = true
	hr.Material = c.Phase
	return hr, true
}
