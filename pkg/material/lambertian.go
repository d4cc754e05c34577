package material

import (
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Lambertian scatters uniformly around the surface normal, approximated
// (as in the original implementation) by normal + a random unit vector.
type Lambertian struct {
	Albedo Texture
}

func NewLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func NewLambertianColor(c core.Vec3) *Lambertian {
	return NewLambertian(NewSolidColor(c))
}

func (l *Lambertian) MaterialName() string { return "lambertian" }

func (l *Lambertian) Scatter(rIn core.Ray, hr core.HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	dir := hr.Normal.Add(core.RandomUnitVector(rng))
	if dir.NearZero() {
		dir = hr.Normal
	}
	return ScatterResult{
		Scattered:   core.NewRay(hr.Point, dir, rIn.Time),
		Attenuation: l.Albedo.Value(hr.U, hr.V, hr.Point),
	}, true
}

func (l *Lambertian) Emit(u, v float32, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
