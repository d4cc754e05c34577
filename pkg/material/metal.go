package material

import (
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Metal reflects about the normal and perturbs the reflected direction
// by Roughness times a random unit vector; a ray that ends up pointing
// into the surface is absorbed rather than scattered.
type Metal struct {
	Albedo    core.Vec3
	Roughness float32
}

func NewMetal(albedo core.Vec3, roughness float32) *Metal {
	if roughness > 1 {
		roughness = 1
	}
	if roughness < 0 {
		roughness = 0
	}
	return &Metal{Albedo: albedo, Roughness: roughness}
}

func (m *Metal) MaterialName() string { return "metal" }

func (m *Metal) Scatter(rIn core.Ray, hr core.HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	reflected := core.Reflect(rIn.Direction.Normalize(), hr.Normal)
	reflected = reflected.Add(core.RandomUnitVector(rng).Mul(m.Roughness))
	if reflected.Dot(hr.Normal) <= 0 {
		return ScatterResult{}, false
	}
	return ScatterResult{
		Scattered:   core.NewRay(hr.Point, reflected, rIn.Time),
		Attenuation: m.Albedo,
	}, true
}

func (m *Metal) Emit(u, v float32, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
