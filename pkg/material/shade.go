package material

import (
	"math/rand"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Shade recursively evaluates a ray against world, accumulating emitted
// light and attenuating by each successive material's Attenuation until
// the ray is absorbed, escapes (and returns background), or depth
// bounces are exhausted. It mirrors the original implementation's
// Ray::shade, translated into an explicit loop so a single call doesn't
// grow the Go call stack by bounces levels.
func Shade(r core.Ray, world core.Hittable, background func(core.Ray) core.Vec3, depth int, rng *rand.Rand) core.Vec3 {
	color := core.NewVec3(1, 1, 1)
	accum := core.Vec3{}

	cur := r
	for bounce := 0; bounce < depth; bounce++ {
		hr, ok := world.Hit(cur, 0.001, float32(1e30))
		if !ok {
			accum = accum.Add(color.MulVec(background(cur)))
			return accum
		}

		mat, isMat := hr.Material.(Material)
		if !isMat {
			return accum
		}

		emitted := mat.Emit(hr.U, hr.V, hr.Point)
		accum = accum.Add(color.MulVec(emitted))

		result, scattered := mat.Scatter(cur, hr, rng)
		if !scattered {
			return accum
		}

		color = color.MulVec(result.Attenuation)
		cur = result.Scattered
	}

	return accum
}
