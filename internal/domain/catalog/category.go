// internal/domain/catalog/category.go
package catalog

// CategoryNode is one node of the read-only category tree sourced from the
// commerce API. Each node has exactly one parent except roots; no cycles.
type CategoryNode struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Children    []CategoryNode `json:"children,omitempty"`
}

// IDSet is a set of category node ids, used for the expanded/collapsed UI
// state of the tree. It is never sent upstream.
type IDSet map[int64]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Toggle removes a present id and adds an absent one.
func (s IDSet) Toggle(id int64) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// CollectAllIDs walks the tree and returns the set of every node id, roots and
// all descendants. Used once to default the expanded set so the tree renders
// fully open.
func CollectAllIDs(roots []CategoryNode) IDSet {
	s := IDSet{}
	var walk func(nodes []CategoryNode)
	walk = func(nodes []CategoryNode) {
		for _, n := range nodes {
			s[n.ID] = struct{}{}
			walk(n.Children)
		}
	}
	walk(roots)
	return s
}
