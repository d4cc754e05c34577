// Package material implements the five shading behaviors the renderer
// recognizes (Lambertian, Metal, Dielectric, DiffuseLight, Isotropic)
// and the textures that feed them their albedo.
package material

import (
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Texture is consulted by surface coordinates and the hit point to
// produce a color, letting a material's albedo vary across a surface.
type Texture interface {
	Value(u, v float32, p core.Vec3) core.Vec3
}

// ScatterResult is what Scatter returns when a ray continues past a
// surface interaction.
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Vec3
}

// Material is the single contract every variant below satisfies. Scatter
// returns ok=false for materials (or material states) that absorb the
// ray rather than continuing it; Emit is zero for every variant except
// DiffuseLight.
type Material interface {
	core.Material
	Scatter(rIn core.Ray, hr core.HitRecord, rng *rand.Rand) (ScatterResult, bool)
	Emit(u, v float32, p core.Vec3) core.Vec3
}
