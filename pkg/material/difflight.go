package material

import (
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/core"
)

// DiffuseLight never scatters; it only emits, at Brightness times the
// texture's color.
type DiffuseLight struct {
	Emission   Texture
	Brightness float32
}

func NewDiffuseLight(emission Texture, brightness float32) *DiffuseLight {
	return &DiffuseLight{Emission: emission, Brightness: brightness}
}

func NewDiffuseLightColor(c core.Vec3, brightness float32) *DiffuseLight {
	return NewDiffuseLight(NewSolidColor(c), brightness)
}

func (d *DiffuseLight) MaterialName() string { return "diffuse_light" }

func (d *DiffuseLight) Scatter(rIn core.Ray, hr core.HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (d *DiffuseLight) Emit(u, v float32, p core.Vec3) core.Vec3 {
	return d.Emission.Value(u, v, p).Mul(d.Brightness)
}
