package material

import (
	"math"
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Dielectric always "scatters" (it never absorbs), choosing between
// reflection and refraction per Schlick's approximation to the Fresnel
// term, with total internal reflection forced when Snell's law has no
// real solution.
type Dielectric struct {
	RefractionIndex float32
}

func NewDielectric(refractionIndex float32) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

func (d *Dielectric) MaterialName() string { return "dielectric" }

func (d *Dielectric) Scatter(rIn core.Ray, hr core.HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	ratio := d.RefractionIndex
	if hr.FrontFace {
		ratio = 1 / d.RefractionIndex
	}

	unitDir := rIn.Direction.Normalize()
	cosTheta := minF(-unitDir.Dot(hr.Normal), 1)
	sinTheta := float32(math.Sqrt(float64(1 - cosTheta*cosTheta)))

	cannotRefract := ratio*sinTheta > 1
	var direction core.Vec3
	if cannotRefract || core.Reflectance(cosTheta, ratio) > float32(rng.Float64()) {
		direction = core.Reflect(unitDir, hr.Normal)
	} else {
		direction = core.Refract(unitDir, hr.Normal, ratio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hr.Point, direction, rIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

func (d *Dielectric) Emit(u, v float32, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
