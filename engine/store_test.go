package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eniklas/nachtmission/core"
)

func TestStoreSwapRemove(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(1, 10)
	s.SetComponent(2, 20)
	s.SetComponent(3, 30)
	s.SetComponent(2, 21)

	s.RemoveEntity(1)
	assert.Equal(t, 2, s.CountEntities())
	v, ok := s.GetComponent(2)
	assert.True(t, ok)
	assert.Equal(t, 21, v)
	v, _ = s.GetComponent(3)
	assert.Equal(t, 30, v)

	s.RemoveBatch([]core.Entity{2, 3, 99})
	assert.Zero(t, s.CountEntities())
	assert.Empty(t, s.GetAllEntities())
}
