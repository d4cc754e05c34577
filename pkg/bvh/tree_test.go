package bvh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnholt/sahtrace/pkg/core"
)

// testSphere is a minimal core.Hittable used only to exercise the tree
// without depending on pkg/hittable (which in turn depends on material).
type testSphere struct {
	center core.Vec3
	radius float32
}

func (s testSphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.radius, s.radius, s.radius)
	return core.NewAABBFromPoints(s.center.Sub(r), s.center.Add(r))
}

func (s testSphere) Hit(r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	oc := r.Origin.Sub(s.center)
	a := r.Direction.LengthSquared()
	half_b := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.radius*s.radius
	disc := half_b*half_b - a*c
	if disc < 0 {
		return core.HitRecord{}, false
	}
	sqrtd := sqrt32(disc)
	root := (-half_b - sqrtd) / a
	if root <= tMin || root >= tMax {
		root = (-half_b + sqrtd) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}
	var hr core.HitRecord
	hr.T = root
	hr.Point = r.At(root)
	outward := hr.Point.Sub(s.center).Div(s.radius)
	hr.SetFaceNormal(r, outward)
	return hr, true
}

func sqrt32(x float32) float32 {
	lo, hi := float32(0), x+1
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		if mid*mid < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

func naiveHit(shapes []core.Hittable, r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	var best core.HitRecord
	found := false
	closest := tMax
	for _, s := range shapes {
		if hr, ok := s.Hit(r, tMin, closest); ok {
			best = hr
			closest = hr.T
			found = true
		}
	}
	return best, found
}

func randomShapes(n int, rng *rand.Rand) []core.Hittable {
	shapes := make([]core.Hittable, n)
	for i := range shapes {
		shapes[i] = testSphere{
			center: core.NewVec3(
				float32(rng.Float64()*40-20),
				float32(rng.Float64()*40-20),
				float32(rng.Float64()*40-20),
			),
			radius: float32(0.3 + rng.Float64()*1.5),
		}
	}
	return shapes
}

func TestTreeAgreesWithNaiveList(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	shapes := randomShapes(200, rng)
	tree := NewTree(shapes)

	for i := 0; i < 500; i++ {
		origin := core.NewVec3(
			float32(rng.Float64()*60-30),
			float32(rng.Float64()*60-30),
			float32(rng.Float64()*60-30),
		)
		dir := core.NewVec3(
			float32(rng.Float64()*2-1),
			float32(rng.Float64()*2-1),
			float32(rng.Float64()*2-1),
		).Normalize()
		r := core.NewRay(origin, dir, 0)

		want, wantOK := naiveHit(shapes, r, 0.001, 1e6)
		got, gotOK := tree.Hit(r, 0.001, 1e6)

		require.Equal(t, wantOK, gotOK)
		if wantOK {
			assert.InDelta(t, float64(want.T), float64(got.T), 1e-3)
		}
	}
}

func TestEmptyTree(t *testing.T) {
	tree := NewTree(nil)
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0)
	_, ok := tree.Hit(r, 0.001, 1e6)
	assert.False(t, ok)
}

func TestSplitMedianFallback(t *testing.T) {
	// All items share a centroid on the split axis: SAH binning can't
	// separate them and the builder must fall back to the median split
	// without panicking or producing a degenerate single-item subtree.
	rng := rand.New(rand.NewSource(7))
	shapes := make([]core.Hittable, 10)
	for i := range shapes {
		shapes[i] = testSphere{center: core.NewVec3(0, 0, 0), radius: float32(1 + i)}
		_ = rng
	}
	tree := NewTree(shapes)
	require.NotNil(t, tree)
	assert.True(t, tree.BoundingBox().IsValid())
}
