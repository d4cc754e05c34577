// Package core provides the geometric primitives shared by every other
// package: vectors, rays, axis-aligned bounding boxes and the hit record
// that shading consumes.
package core

import "math"

// Vec3 is a three-component vector used for points, directions and colors
// alike. Every geometric scalar in this module is float32: the renderer's
// sample accumulators widen to float64 on their own, but the BVH, the ray
// and the shading math stay in single precision.
type Vec3 struct {
	X, Y, Z float32
}

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(t float32) Vec3   { return Vec3{v.X * t, v.Y * t, v.Z * t} }
func (v Vec3) MulVec(o Vec3) Vec3   { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Div(t float32) Vec3   { return v.Mul(1 / t) }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// NearZero reports whether every component is within epsilon of zero,
// used to catch degenerate scatter directions before they become NaNs.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return float32(math.Abs(float64(v.X))) < eps &&
		float32(math.Abs(float64(v.Y))) < eps &&
		float32(math.Abs(float64(v.Z))) < eps
}

// Index returns the component along the given axis.
func (v Vec3) Index(a Axis) float32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{fmin(v.X, o.X), fmin(v.Y, o.Y), fmin(v.Z, o.Z)}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{fmax(v.X, o.X), fmax(v.Y, o.Y), fmax(v.Z, o.Z)}
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Lerp linearly interpolates between two vectors; used for moving-sphere
// centers.
func Lerp(a, b Vec3, t float32) Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// GammaCorrect applies a 1/gamma power to each channel, clamped to [0,1]
// beforehand so stray fireflies don't produce NaN output.
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	clamp := func(x float32) float32 {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	g := func(x float32) float32 {
		return float32(math.Pow(float64(clamp(x)), 1/gamma))
	}
	return Vec3{g(v.X), g(v.Y), g(v.Z)}
}
