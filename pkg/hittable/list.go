package hittable

import "github.com/arnholt/sahtrace/pkg/core"

// List is the naive linear intersector: try every member, keep the
// closest hit. It is the ground truth the BVH's result is checked
// against, and is itself used directly for small shape groups (e.g. a
// QuadBox's six faces) where a tree would add overhead with no benefit.
type List struct {
	Items []core.Hittable
	box   core.AABB
}

func NewList(items ...core.Hittable) *List {
	l := &List{Items: items}
	box := core.Empty()
	for _, it := range items {
		box = box.Union(it.BoundingBox())
	}
	l.box = box
	return l
}

func (l *List) Add(h core.Hittable) {
	l.Items = append(l.Items, h)
	l.box = l.box.Union(h.BoundingBox())
}

func (l *List) BoundingBox() core.AABB { return l.box }

func (l *List) Hit(r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	var best core.HitRecord
	found := false
	closest := tMax
	for _, it := range l.Items {
		if hr, ok := it.Hit(r, tMin, closest); ok {
			found = true
			closest = hr.T
			best = hr
		}
	}
	return best, found
}
