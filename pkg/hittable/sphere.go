// Package hittable implements the primitive and composite geometry that
// populates a scene: spheres, quads, transformed instances and
// participating-media volumes.
package hittable

import (
	"math"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Sphere is a fixed-center analytic sphere with spherical (u,v) mapping.
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material core.Material
}

func NewSphere(center core.Vec3, radius float32, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABBFromPoints(s.Center.Sub(r), s.Center.Add(r))
}

func sphereUV(p core.Vec3) (u, v float32) {
	theta := float32(math.Acos(float64(-p.Y)))
	phi := float32(math.Atan2(float64(-p.Z), float64(p.X))) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func (s *Sphere) Hit(r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, r, tMin, tMax)
}

func hitSphere(center core.Vec3, radius float32, mat core.Material, r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - radius*radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return core.HitRecord{}, false
	}
	sqrtd := float32(math.Sqrt(float64(disc)))

	root := (-halfB - sqrtd) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtd) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}

	var hr core.HitRecord
	hr.T = root
	hr.Point = r.At(root)
	outward := hr.Point.Sub(center).Div(radius)
	hr.SetFaceNormal(r, outward)
	hr.U, hr.V = sphereUV(outward)
	hr.Material = mat
	return hr, true
}

// MovingSphere linearly interpolates its center between Center0 (at
// Time0) and Center1 (at Time1), the way the camera's shutter motion
// blur expects a moving hittable to behave.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float32
	Radius           float32
	Material         core.Material
}

func NewMovingSphere(c0, c1 core.Vec3, t0, t1, radius float32, mat core.Material) *MovingSphere {
	return &MovingSphere{Center0: c0, Center1: c1, Time0: t0, Time1: t1, Radius: radius, Material: mat}
}

func (m *MovingSphere) centerAt(time float32) core.Vec3 {
	if m.Time1 == m.Time0 {
		return m.Center0
	}
	t := (time - m.Time0) / (m.Time1 - m.Time0)
	return core.Lerp(m.Center0, m.Center1, t)
}

func (m *MovingSphere) BoundingBox() core.AABB {
	r := core.NewVec3(m.Radius, m.Radius, m.Radius)
	box0 := core.NewAABBFromPoints(m.Center0.Sub(r), m.Center0.Add(r))
	box1 := core.NewAABBFromPoints(m.Center1.Sub(r), m.Center1.Add(r))
	return box0.Union(box1)
}

func (m *MovingSphere) Hit(r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	return hitSphere(m.centerAt(r.Time), m.Radius, m.Material, r, tMin, tMax)
}
