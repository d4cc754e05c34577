package hittable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnholt/sahtrace/pkg/core"
	"github.com/arnholt/sahtrace/pkg/material"
)

func TestSphereHitFrontFace(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 0, 0))
	s := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	hr, ok := s.Hit(r, 0.001, 1e6)
	require.True(t, ok)
	assert.True(t, hr.FrontFace)
	assert.InDelta(t, 0.5, float64(hr.T), 1e-4)
}

func TestMovingSphereBoundsCoverBothEndpoints(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 1, 1))
	ms := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 0, 1, 0.5, mat)
	box := ms.BoundingBox()
	assert.LessOrEqual(t, box.Max.X, float32(4.5))
	assert.GreaterOrEqual(t, box.Max.X, float32(0.5))
}

func TestQuadHitInsideBounds(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 1, 1))
	q := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)
	r := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0)

	hr, ok := q.Hit(r, 0.001, 1e6)
	require.True(t, ok)
	assert.InDelta(t, 5.0, float64(hr.T), 1e-4)
}

func TestQuadMissOutsideBounds(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 1, 1))
	q := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)
	r := core.NewRay(core.NewVec3(5, 5, -5), core.NewVec3(0, 0, 1), 0)

	_, ok := q.Hit(r, 0.001, 1e6)
	assert.False(t, ok)
}

func TestQuadBoxIsClosed(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 1, 1))
	box := NewQuadBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), mat)
	require.Len(t, box.Items, 6)

	// A ray through the center should hit exactly the near and far faces.
	r := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0)
	hr, ok := box.Hit(r, 0.001, 1e6)
	require.True(t, ok)
	assert.InDelta(t, 4.0, float64(hr.T), 1e-3)
}

func TestTransformRotatesAndTranslates(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 1, 1))
	s := NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	tr := NewTransform(s, core.NewVec3(10, 0, 0), 90)

	box := tr.BoundingBox()
	assert.InDelta(t, 9.0, float64(box.Min.X), 1e-3)
	assert.InDelta(t, 11.0, float64(box.Max.X), 1e-3)
}

func TestListAggregatesBounds(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(1, 1, 1))
	a := NewSphere(core.NewVec3(-5, 0, 0), 1, mat)
	b := NewSphere(core.NewVec3(5, 0, 0), 1, mat)
	l := NewList(a, b)
	box := l.BoundingBox()
	assert.InDelta(t, -6.0, float64(box.Min.X), 1e-4)
	assert.InDelta(t, 6.0, float64(box.Max.X), 1e-4)
}
