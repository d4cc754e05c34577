// Package bvh builds and traverses a surface-area-heuristic bounding
// volume hierarchy over an arbitrary set of core.Hittable objects.
package bvh

import (
	"sort"

	"github.com/arnholt/sahtrace/pkg/core"
)

// NumBins is the fixed number of SAH buckets used when choosing a split
// plane along the chosen axis.
const NumBins = 16

// leafThreshold caps the number of items a leaf may hold before the
// builder considers splitting it further.
const leafThreshold = 4

// traversalCost and intersectCost are the relative costs used by the SAH
// formula: traversalCost is the fixed 0.5 additive term spec.md §4.3
// prescribes (`min_cost = 0.5 + min(cost)/SA(total_bbox)`), intersectCost
// the per-primitive weight applied once per item tested.
const (
	traversalCost = 0.5
	intersectCost = 1.0
)

// ItemInfo pairs a hittable's index in the caller's slice with its
// precomputed bounding box and centroid, so the builder never has to
// call BoundingBox() twice for the same item.
type ItemInfo struct {
	Index    int
	Box      core.AABB
	Centroid core.Vec3
}

// TreeNode is the tagged-variant node of the hierarchy: either a Leaf
// holding a span of item indices, or an Interior holding the arena
// indices of its two children. Only one of the two variants' fields is
// meaningful at a time, selected by IsLeaf.
type TreeNode struct {
	BoundingBox core.AABB

	IsLeaf bool

	// Leaf fields.
	Items []int

	// Interior fields.
	Left, Right core.ArenaIndex
	Axis        core.Axis
}

// Tree is an arena-backed BVH over a fixed slice of hittables, built once
// and read many times by Hit.
type Tree struct {
	arena   *core.Arena[TreeNode]
	root    core.ArenaIndex
	shapes  []core.Hittable
	bounds  core.AABB
}

// NewTree copies shapes (so later mutation of the caller's slice can't
// race with concurrent Hit calls) and builds a SAH hierarchy over them.
func NewTree(shapes []core.Hittable) *Tree {
	owned := make([]core.Hittable, len(shapes))
	copy(owned, shapes)

	items := make([]ItemInfo, len(owned))
	for i, s := range owned {
		box := s.BoundingBox()
		items[i] = ItemInfo{Index: i, Box: box, Centroid: box.Centroid()}
	}

	t := &Tree{shapes: owned, arena: core.NewArenaWithCapacity[TreeNode](2*len(owned) + 1)}
	if len(items) == 0 {
		t.root = t.arena.Add(TreeNode{BoundingBox: core.Empty(), IsLeaf: true})
		t.bounds = core.Empty()
		return t
	}

	t.root = t.build(items)
	t.bounds = t.arena.Get(t.root).BoundingBox
	return t
}

func (t *Tree) BoundingBox() core.AABB {
	return t.bounds
}

// build recursively partitions items, returning the arena index of the
// node it created.
func (t *Tree) build(items []ItemInfo) core.ArenaIndex {
	bounds := core.Empty()
	centroidBounds := core.Empty()
	for _, it := range items {
		bounds = bounds.Union(it.Box)
		centroidBounds = centroidBounds.AddPoint(it.Centroid)
	}

	if len(items) <= leafThreshold {
		return t.makeLeaf(items, bounds)
	}

	axis := bounds.LongestAxis()
	extent := centroidBounds.Diagonal().Index(axis)
	var left, right []ItemInfo
	ok := false
	if extent > 0 {
		left, right, ok = t.splitSAH(items, bounds, centroidBounds, axis, extent)
	}
	// All centroids coinciding on this axis leaves binning nothing to
	// separate, so that case goes straight to the median split.
	if !ok {
		left, right, ok = splitMedian(items, axis)
		if !ok {
			return t.makeLeaf(items, bounds)
		}
	}

	leftIdx := t.build(left)
	rightIdx := t.build(right)
	node := TreeNode{
		BoundingBox: bounds,
		IsLeaf:      false,
		Left:        leftIdx,
		Right:       rightIdx,
		Axis:        axis,
	}
	return t.arena.Add(node)
}

func (t *Tree) makeLeaf(items []ItemInfo, bounds core.AABB) core.ArenaIndex {
	idxs := make([]int, len(items))
	for i, it := range items {
		idxs[i] = it.Index
	}
	return t.arena.Add(TreeNode{BoundingBox: bounds, IsLeaf: true, Items: idxs})
}

type bin struct {
	bounds core.AABB
	count  int
}

// splitSAH buckets items into NumBins buckets by their centroid's
// position along axis, accumulates prefix/suffix bounding boxes and
// counts, and picks the bucket boundary with the lowest surface-area
// heuristic cost. It reports ok=false when splitting is not worthwhile
// (the best binned cost exceeds the cost of not splitting at all), which
// tells the caller to fall back to a median split.
func (t *Tree) splitSAH(items []ItemInfo, bounds, centroidBounds core.AABB, axis core.Axis, extent float32) (left, right []ItemInfo, ok bool) {
	bins := make([]bin, NumBins)
	for i := range bins {
		bins[i].bounds = core.Empty()
	}

	binIndex := func(it ItemInfo) int {
		offset := (it.Centroid.Index(axis) - centroidBounds.Min.Index(axis)) / extent
		idx := int(offset * float32(NumBins))
		if idx < 0 {
			idx = 0
		}
		if idx >= NumBins {
			idx = NumBins - 1
		}
		return idx
	}

	for _, it := range items {
		b := binIndex(it)
		bins[b].bounds = bins[b].bounds.Union(it.Box)
		bins[b].count++
	}

	// Prefix bounds/counts for a split after bucket i (0..NumBins-2),
	// suffix bounds/counts for the buckets after it.
	prefixBounds := make([]core.AABB, NumBins)
	prefixCount := make([]int, NumBins)
	running := core.Empty()
	runningCount := 0
	for i := 0; i < NumBins; i++ {
		running = running.Union(bins[i].bounds)
		runningCount += bins[i].count
		prefixBounds[i] = running
		prefixCount[i] = runningCount
	}

	suffixBounds := make([]core.AABB, NumBins)
	suffixCount := make([]int, NumBins)
	running = core.Empty()
	runningCount = 0
	for i := NumBins - 1; i >= 0; i-- {
		running = running.Union(bins[i].bounds)
		runningCount += bins[i].count
		suffixBounds[i] = running
		suffixCount[i] = runningCount
	}

	bestCost := float32(-1)
	bestSplit := -1
	totalArea := bounds.SurfaceArea()
	for i := 0; i < NumBins-1; i++ {
		nLeft := prefixCount[i]
		nRight := suffixCount[i+1]
		if nLeft == 0 || nRight == 0 {
			continue
		}
		costLeft := prefixBounds[i].SurfaceArea() * float32(nLeft)
		costRight := suffixBounds[i+1].SurfaceArea() * float32(nRight)
		cost := traversalCost + intersectCost*(costLeft+costRight)/totalArea
		if bestSplit == -1 || cost < bestCost {
			bestCost = cost
			bestSplit = i
		}
	}

	if bestSplit == -1 {
		return nil, nil, false
	}

	leafCost := intersectCost * float32(len(items))
	if bestCost >= leafCost {
		return nil, nil, false
	}

	left = make([]ItemInfo, 0, len(items))
	right = make([]ItemInfo, 0, len(items))
	for _, it := range items {
		if binIndex(it) <= bestSplit {
			left = append(left, it)
		} else {
			right = append(right, it)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return nil, nil, false
	}
	return left, right, true
}

// splitMedian is the fallback used when SAH binning can't find a usable
// split (e.g. every item lands in the same bucket): sort by the box's
// Min coordinate along axis and divide the sorted list in half. Kept as
// the bbox.Min[axis] sort rather than the "most-populated bin"
// alternative some drafts used instead; both are legal, neither
// dominates.
func splitMedian(items []ItemInfo, axis core.Axis) (left, right []ItemInfo, ok bool) {
	if len(items) < 2 {
		return nil, nil, false
	}
	sorted := make([]ItemInfo, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Box.Min.Index(axis) < sorted[j].Box.Min.Index(axis)
	})
	mid := len(sorted) / 2
	return sorted[:mid], sorted[mid:], true
}

// Hit walks the hierarchy left child first, then right child, searching
// the right subtree only up to the left subtree's closest hit so that
// its boxes beyond that hit are skipped.
func (t *Tree) Hit(r core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	invDir := core.InvDirection(r)
	return t.hitNode(t.root, r, invDir, tMin, tMax)
}

func (t *Tree) hitNode(idx core.ArenaIndex, r core.Ray, invDir core.Vec3, tMin, tMax float32) (core.HitRecord, bool) {
	node := t.arena.Get(idx)
	if !node.BoundingBox.HitWithInv(r, invDir, tMin, tMax) {
		return core.HitRecord{}, false
	}

	if node.IsLeaf {
		var best core.HitRecord
		hitAny := false
		closest := tMax
		for _, itemIdx := range node.Items {
			if hr, ok := t.shapes[itemIdx].Hit(r, tMin, closest); ok {
				hitAny = true
				closest = hr.T
				best = hr
			}
		}
		return best, hitAny
	}

	leftHit, leftOK := t.hitNode(node.Left, r, invDir, tMin, tMax)
	if leftOK {
		tMax = leftHit.T
	}
	rightHit, rightOK := t.hitNode(node.Right, r, invDir, tMin, tMax)
	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}

// Shapes exposes the flattened, owned shape list the tree was built over.
func (t *Tree) Shapes() []core.Hittable {
	return t.shapes
}
