package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSaturates(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(9, -5, 5))
	assert.Equal(t, -5.0, Clamp(-9, -5, 5))
	assert.Equal(t, 1.5, Clamp(1.5, -5, 5))
	assert.Equal(t, -50.0, ClampMag(-80, 50))
}

func TestMoveTowardNoOvershoot(t *testing.T) {
	assert.Equal(t, 2.5, MoveToward(2, 2.5, 1))
	assert.Equal(t, 1.0, MoveToward(2, 0, 1))
	assert.Equal(t, 0.0, MoveToward(0.3, 0, 1))
}

func TestWrapDegrees(t *testing.T) {
	assert.InDelta(t, 350.0, WrapDegrees(-10), 1e-9)
	assert.InDelta(t, 10.0, WrapDegrees(370), 1e-9)
	assert.InDelta(t, -45.0, SignedDegrees(315), 1e-9)
	assert.InDelta(t, 45.0, SignedDegrees(45), 1e-9)
}

func TestPitchedDirectionDipsNose(t *testing.T) {
	right := PitchedDirection(1, 30)
	assert.Greater(t, right.X, 0.0)
	assert.Less(t, right.Y, 0.0)

	left := PitchedDirection(-1, -30)
	assert.Less(t, left.X, 0.0)
	assert.Less(t, left.Y, 0.0)

	assert.InDelta(t, 1.0, V3FMag(left), 1e-9)
}

func TestAABBOverlap(t *testing.T) {
	a := AABB{Center: V3F(0, 0, 0), Half: V3F(1, 1, 1)}
	b := AABB{Center: V3F(1.5, 0, 0), Half: V3F(1, 1, 1)}
	c := AABB{Center: V3F(2, 0, 0), Half: V3F(1, 1, 1)}

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c), "touching faces are not contact")
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 1000; i++ {
		v := r.Range(-20, 20)
		assert.GreaterOrEqual(t, v, -20.0)
		assert.Less(t, v, 20.0)
	}
	assert.Equal(t, NewFastRand(7).Next(), NewFastRand(7).Next())
}
