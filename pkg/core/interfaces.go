package core

// Material is implemented by pkg/material; declared here as an interface
// so that core (and anything built on it) can hold a hit record without
// importing the material package, avoiding an import cycle.
type Material interface {
	// MaterialName identifies the variant; the interesting methods live
	// on the concrete type in pkg/material.
	MaterialName() string
}

// HitRecord carries everything a shading step needs about the point where
// a ray struck a hittable.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	Material  Material
	T         float32
	U, V      float32
	FrontFace bool
}

// SetFaceNormal orients Normal to always point against the incoming ray,
// recording whether the hit was on the geometric front face so dielectric
// materials can tell which medium the ray is leaving.
func (hr *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	hr.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if hr.FrontFace {
		hr.Normal = outwardNormal
	} else {
		hr.Normal = outwardNormal.Neg()
	}
}

// Hittable is anything a ray can strike: a primitive, a transformed
// wrapper, a list, or a BVH tree.
type Hittable interface {
	Hit(r Ray, tMin, tMax float32) (HitRecord, bool)
	BoundingBox() AABB
}
