package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() []CategoryNode {
	return []CategoryNode{
		{
			ID:   1,
			Name: "Cables",
			Children: []CategoryNode{
				{ID: 2, Name: "Type 1"},
				{ID: 3, Name: "Type 2", Children: []CategoryNode{
					{ID: 4, Name: "Three-phase"},
				}},
			},
		},
		{ID: 5, Name: "Adapters"},
	}
}

func TestCollectAllIDs(t *testing.T) {
	ids := CollectAllIDs(sampleTree())

	assert.Len(t, ids, 5)
	for _, id := range []int64{1, 2, 3, 4, 5} {
		assert.True(t, ids.Has(id), "id %d", id)
	}

	assert.Empty(t, CollectAllIDs(nil))
}

func TestIDSetToggle(t *testing.T) {
	s := NewIDSet(1, 2)

	s.Toggle(2)
	assert.False(t, s.Has(2))

	s.Toggle(3)
	assert.True(t, s.Has(3))

	// toggle twice restores the original state
	s.Toggle(7)
	s.Toggle(7)
	assert.False(t, s.Has(7))
}
