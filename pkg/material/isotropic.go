package material

import (
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Isotropic scatters a ray in a uniformly random direction regardless of
// the surface normal, modeling single scattering inside a participating
// medium. It is only ever attached to a ConstantMedium's boundary hit.
type Isotropic struct {
	Albedo Texture
}

func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func NewIsotropicColor(c core.Vec3) *Isotropic {
	return NewIsotropic(NewSolidColor(c))
}

func (i *Isotropic) MaterialName() string { return "isotropic" }

func (i *Isotropic) Scatter(rIn core.Ray, hr core.HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hr.Point, core.RandomUnitVector(rng), rIn.Time),
		Attenuation: i.Albedo.Value(hr.U, hr.V, hr.Point),
	}, true
}

func (i *Isotropic) Emit(u, v float32, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
