package hittable

import "github.com/arnholt/sahtrace/pkg/core"

// NewQuadBox builds a closed axis-aligned box from six quads spanning
// the corners p0 (min) and p1 (max), used for the pedestal boxes inside
// the Cornell-box scenes. Returned as a List so it can be wrapped by
// Transform for rotation/translation.
func NewQuadBox(p0, p1 core.Vec3, mat core.Material) *List {
	min := p0.Min(p1)
	max := p0.Max(p1)

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	return NewList(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat),  // front
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Neg(), dy, mat), // right
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Neg(), dy, mat), // back
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat),  // left
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Neg(), mat), // top
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat),  // bottom
	)
}
