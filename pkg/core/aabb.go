package core

import "math"

// AABB is an axis-aligned bounding box. The zero box produced by Empty()
// has Min at +inf and Max at -inf component-wise, so that Union with any
// real box returns that box unchanged.
type AABB struct {
	Min, Max Vec3
}

// Empty returns the sentinel empty box: Union(Empty(), b) == b for any b.
func Empty() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns the smallest box containing both points,
// tolerating either corner ordering.
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// Union returns the smallest box containing both boxes.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// AddPoint grows the box to include p.
func (b AABB) AddPoint(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Diagonal is the vector from Min to Max.
func (b AABB) Diagonal() Vec3 {
	return b.Max.Sub(b.Min)
}

// Centroid is the midpoint of the box.
func (b AABB) Centroid() Vec3 {
	return b.Min.Mul(0.5).Add(b.Max.Mul(0.5))
}

// SurfaceArea is twice the sum of the three face areas; used directly by
// the SAH cost function.
func (b AABB) SurfaceArea() float32 {
	d := b.Diagonal()
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return 2 * (d.X*d.Y + d.X*d.Z + d.Y*d.Z)
}

// LongestAxis returns the axis along which the box's extent is greatest,
// breaking ties in favor of X over Y over Z.
func (b AABB) LongestAxis() Axis {
	d := b.Diagonal()
	if d.X >= d.Y && d.X >= d.Z {
		return AxisX
	}
	if d.Y >= d.Z {
		return AxisY
	}
	return AxisZ
}

// Offset expresses p as a fraction of the box's extent along each axis;
// an axis with zero extent is left as the raw distance from Min.
func (b AABB) Offset(p Vec3) Vec3 {
	o := p.Sub(b.Min)
	d := b.Diagonal()
	if d.X > 0 {
		o.X /= d.X
	}
	if d.Y > 0 {
		o.Y /= d.Y
	}
	if d.Z > 0 {
		o.Z /= d.Z
	}
	return o
}

// Hit is the branching slab test: walks each axis, narrowing [tMin,tMax],
// with an explicit near-parallel special case.
func (b AABB) Hit(r Ray, tMin, tMax float32) bool {
	for _, axis := range Axes {
		origin := r.Origin.Index(axis)
		dir := r.Direction.Index(axis)
		bmin := b.Min.Index(axis)
		bmax := b.Max.Index(axis)

		if float32(math.Abs(float64(dir))) < 1e-8 {
			if origin < bmin || origin > bmax {
				return false
			}
			continue
		}

		invD := 1 / dir
		t0 := (bmin - origin) * invD
		t1 := (bmax - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// HitWithInv is the branchless box test: it takes the ray's precomputed
// direction reciprocal and folds the per-axis min/max without any
// conditional branch, using fmin/fmax's defined behavior on NaN to absorb
// the degenerate axis-parallel case instead of special-casing it.
func (b AABB) HitWithInv(r Ray, invDir Vec3, tMin, tMax float32) bool {
	for _, axis := range Axes {
		origin := r.Origin.Index(axis)
		inv := invDir.Index(axis)
		bmin := b.Min.Index(axis)
		bmax := b.Max.Index(axis)

		t0 := (bmin - origin) * inv
		t1 := (bmax - origin) * inv

		tMin = fmax(tMin, fmin(t0, t1))
		tMax = fmin(tMax, fmax(t0, t1))
	}
	return tMin <= tMax
}

// IsValid reports whether the box has non-negative extent on every axis.
func (b AABB) IsValid() bool {
	d := b.Diagonal()
	return d.X >= 0 && d.Y >= 0 && d.Z >= 0
}

// InvDirection precomputes 1/Direction for repeated HitWithInv calls
// against many boxes along a single ray, as the BVH traversal does.
func InvDirection(r Ray) Vec3 {
	return Vec3{1 / r.Direction.X, 1 / r.Direction.Y, 1 / r.Direction.Z}
}
