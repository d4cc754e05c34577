package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyUnionIdentity(t *testing.T) {
	b := NewAABB(NewVec3(1, 2, 3), NewVec3(4, 5, 6))
	got := Empty().Union(b)
	assert.Equal(t, b.Min, got.Min)
	assert.Equal(t, b.Max, got.Max)
}

func TestSurfaceArea(t *testing.T) {
	b := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 3, 4))
	// 2*(2*3 + 2*4 + 3*4) = 2*(6+8+12) = 52
	assert.InDelta(t, 52.0, float64(b.SurfaceArea()), 1e-5)
}

func TestLongestAxisTieBreak(t *testing.T) {
	b := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	require.Equal(t, AxisX, b.LongestAxis())

	b2 := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 2))
	require.Equal(t, AxisY, b2.LongestAxis())
}

func TestHitAgreesWithBranchless(t *testing.T) {
	b := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	r := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1), 0)

	got := b.Hit(r, 0.001, 1e6)
	assert.True(t, got)

	gotInv := b.HitWithInv(r, InvDirection(r), 0.001, 1e6)
	assert.Equal(t, got, gotInv)
}

func TestHitMiss(t *testing.T) {
	b := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	r := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1), 0)

	assert.False(t, b.Hit(r, 0.001, 1e6))
	assert.False(t, b.HitWithInv(r, InvDirection(r), 0.001, 1e6))
}

func TestOffsetWithinUnitBox(t *testing.T) {
	b := NewAABB(NewVec3(0, 0, 0), NewVec3(10, 10, 10))
	o := b.Offset(NewVec3(5, 0, 10))
	assert.InDelta(t, 0.5, float64(o.X), 1e-6)
	assert.InDelta(t, 0.0, float64(o.Y), 1e-6)
	assert.InDelta(t, 1.0, float64(o.Z), 1e-6)
}
