package core

import (
	"math"
	"math/rand"
)

// Every function below takes its *rand.Rand explicitly rather than
// reaching for a package-level generator, so that a worker pool can give
// each worker an independently seeded stream with no hidden shared state.

// RandomUnitVector returns a uniformly distributed point on the unit
// sphere via rejection sampling inside the unit cube.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: float32(rng.Float64()*2 - 1),
			Y: float32(rng.Float64()*2 - 1),
			Z: float32(rng.Float64()*2 - 1),
		}
		lsq := p.LengthSquared()
		if lsq > 1e-20 && lsq <= 1 {
			return p.Div(float32(math.Sqrt(float64(lsq))))
		}
	}
}

// RandomInUnitDisk returns a uniformly distributed point within the unit
// disk in the XY plane (Z is always zero), used for lens sampling.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: float32(rng.Float64()*2 - 1),
			Y: float32(rng.Float64()*2 - 1),
		}
		if p.LengthSquared() <= 1 {
			return p
		}
	}
}

// RandomOnHemisphere returns a unit vector on the unit sphere, flipped so
// that it lies in the same hemisphere as normal.
func RandomOnHemisphere(rng *rand.Rand, normal Vec3) Vec3 {
	v := RandomUnitVector(rng)
	if v.Dot(normal) < 0 {
		return v.Neg()
	}
	return v
}

// Reflect mirrors v about the surface normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends the unit vector uv across a surface with normal n per
// Snell's law, given the ratio of refractive indices (incident/transmitted).
func Refract(uv, n Vec3, etaiOverEtat float32) Vec3 {
	cosTheta := minFloat32(-uv.Dot(n), 1)
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-float32(math.Sqrt(math.Abs(float64(1 - rOutPerp.LengthSquared())))))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance is Schlick's approximation to the Fresnel reflectance of a
// dielectric boundary.
func Reflectance(cosine, refractionRatio float32) float32 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*float32(math.Pow(float64(1-cosine), 5))
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
