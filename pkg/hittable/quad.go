package hittable

import (
	"math"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Quad is a planar parallelogram defined by a corner Q and two edge
// vectors U, V. Hit testing projects the ray/plane intersection point
// into the quad's (alpha, beta) basis, the same plane-then-project
// technique used by the original implementation's quad intersector.
type Quad struct {
	Q, U, V  core.Vec3
	Material core.Material

	normal core.Vec3
	w      core.Vec3
	d      float32
	box    core.AABB
}

func NewQuad(q, u, v core.Vec3, mat core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()
	quad := &Quad{
		Q: q, U: u, V: v, Material: mat,
		normal: normal,
		d:      normal.Dot(q),
		w:      n.Div(n.Dot(n)),
	}
	quad.box = quad.computeBox()
	return quad
}

// FromBoundsK builds an axis-aligned quad spanning [aMin,aMax]x[bMin,bMax]
// at the fixed coordinate k on the given axis, matching the convenience
// constructor used throughout the box-room scene builders.
func FromBoundsK(aMin, aMax, bMin, bMax, k float32, axis core.Axis, mat core.Material) *Quad {
	var q, u, v core.Vec3
	switch axis {
	case core.AxisX:
		q = core.NewVec3(k, aMin, bMin)
		u = core.NewVec3(0, aMax-aMin, 0)
		v = core.NewVec3(0, 0, bMax-bMin)
	case core.AxisY:
		q = core.NewVec3(aMin, k, bMin)
		u = core.NewVec3(aMax-aMin, 0, 0)
		v = core.NewVec3(0, 0, bMax-bMin)
	default:
		q = core.NewVec3(aMin, bMin, k)
		u = core.NewVec3(aMax-aMin, 0, 0)
		v = core.NewVec3(0, bMax-bMin, 0)
	}
	return NewQuad(q, u, v, mat)
}

// FromTwoPoints builds an axis-aligned quad on the Z plane spanning the
// rectangle between two corner points, mirroring the original
// implementation's from_two_points_z helper used by simple light panels.
func FromTwoPoints(p0, p1 core.Vec3, mat core.Material) *Quad {
	q := core.NewVec3(minF32(p0.X, p1.X), minF32(p0.Y, p1.Y), p0.Z)
	u := core.NewVec3(maxF32(p0.X, p1.X)-q.X, 0, 0)
	v := core.NewVec3(0, maxF32(p0.Y, p1.Y)-q.Y, 0)
	return NewQuad(q, u, v, mat)
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func (q *Quad) computeBox() core.AABB {
	const eps = 1e-4
	p0 := q.Q
	p1 := q.Q.Add(q.U)
	p2 := q.Q.Add(q.V)
	p3 := q.Q.Add(q.U).Add(q.V)
	box := core.NewAABBFromPoints(p0, p3).Union(core.NewAABBFromPoints(p1, p2))
	return box.Union(core.NewAABBFromPoints(box.Min.Sub(core.NewVec3(eps, eps, eps)), box.Max.Add(core.NewVec3(eps, eps, eps))))
}

func (q *Quad) BoundingBox() core.AABB { return q.box }

func (q *Quad) Hit(r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	denom := q.normal.Dot(r.Direction)
	if float32(math.Abs(float64(denom))) < 1e-8 {
		return core.HitRecord{}, false
	}
	t := (q.d - q.normal.Dot(r.Origin)) / denom
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	p := r.At(t)
	planarHit := p.Sub(q.Q)
	alpha := q.w.Dot(planarHit.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planarHit))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitRecord{}, false
	}

	var hr core.HitRecord
	hr.T = t
	hr.U, hr.V = alpha, beta
	hr.Point = p
	hr.Material = q.Material
	hr.SetFaceNormal(r, q.normal)
	return hr, true
}
