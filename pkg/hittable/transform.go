package hittable

import (
	"math"

	"github.com/arnholt/sahtrace/pkg/core"
)

// Transform wraps a hittable with a rotation about the Y axis followed
// by a translation, the composition the scene builders need for the
// rotated Cornell-box pedestals and the instanced sphere swarm. Ray
// intersection is done by moving the incoming ray into the object's
// local frame (undo translation, then undo rotation) and rotating the
// resulting hit point and normal back into world space, the same
// translate-then-rotate wrapper idiom as the original implementation's
// Transform, restricted here to the subset of affine transforms the
// built-in scenes actually use.
type Transform struct {
	Object      core.Hittable
	Translation core.Vec3
	sin, cos    float32
	box         core.AABB
}

// NewTransform rotates Object by angleDegrees about the Y axis and then
// translates it by translation.
func NewTransform(object core.Hittable, translation core.Vec3, angleDegrees float32) *Transform {
	rad := float64(angleDegrees) * math.Pi / 180
	t := &Transform{
		Object:      object,
		Translation: translation,
		sin:         float32(math.Sin(rad)),
		cos:         float32(math.Cos(rad)),
	}
	t.box = t.computeBox()
	return t
}

func (t *Transform) rotateFwd(p core.Vec3) core.Vec3 {
	return core.NewVec3(
		t.cos*p.X+t.sin*p.Z,
		p.Y,
		-t.sin*p.X+t.cos*p.Z,
	)
}

func (t *Transform) rotateInv(p core.Vec3) core.Vec3 {
	return core.NewVec3(
		t.cos*p.X-t.sin*p.Z,
		p.Y,
		t.sin*p.X+t.cos*p.Z,
	)
}

func (t *Transform) computeBox() core.AABB {
	local := t.Object.BoundingBox()
	box := core.Empty()
	for i := 0; i < 8; i++ {
		x := local.Min.X
		if i&1 != 0 {
			x = local.Max.X
		}
		y := local.Min.Y
		if i&2 != 0 {
			y = local.Max.Y
		}
		z := local.Min.Z
		if i&4 != 0 {
			z = local.Max.Z
		}
		corner := t.rotateFwd(core.NewVec3(x, y, z)).Add(t.Translation)
		box = box.AddPoint(corner)
	}
	return box
}

func (t *Transform) BoundingBox() core.AABB { return t.box }

func (t *Transform) Hit(r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	localOrigin := t.rotateInv(r.Origin.Sub(t.Translation))
	localDir := t.rotateInv(r.Direction)
	localRay := core.NewRay(localOrigin, localDir, r.Time)

	hr, ok := t.Object.Hit(localRay, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}

	hr.Point = t.rotateFwd(hr.Point).Add(t.Translation)
	hr.Normal = t.rotateFwd(hr.Normal)
	return hr, true
}
