package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Sub(b))
	assert.InDelta(t, 32.0, float64(a.Dot(b)), 1e-6)
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	assert.Equal(t, NewVec3(0, 0, 1), x.Cross(y))
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	n := v.Normalize()
	assert.InDelta(t, 1.0, float64(n.Length()), 1e-5)
}

func TestNearZero(t *testing.T) {
	assert.True(t, NewVec3(1e-9, -1e-9, 0).NearZero())
	assert.False(t, NewVec3(0.1, 0, 0).NearZero())
}
