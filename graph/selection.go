// Package graph: the ephemeral fusion selection set.

package graph

// Selection tracks the nodes currently marked for fusion, in the order the
// caller picked them. It is ephemeral interactive state: it is never
// persisted and a deleted node must be removed from it (see
// Graph.DeleteAndDeselect). The zero value is ready to use.
type Selection struct {
	ids []uint64
}

// Toggle flips the selection state of id and reports whether the id is
// selected after the call.
// Complexity: O(n).
func (s *Selection) Toggle(id uint64) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)

			return false
		}
	}
	s.ids = append(s.ids, id)

	return true
}

// Contains reports whether id is currently selected.
// Complexity: O(n).
func (s *Selection) Contains(id uint64) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}

	return false
}

// Remove drops id from the selection if present.
// Complexity: O(n).
func (s *Selection) Remove(id uint64) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)

			return
		}
	}
}

// Clear empties the selection.
// Complexity: O(1).
func (s *Selection) Clear() {
	s.ids = s.ids[:0]
}

// IDs returns the selected ids in selection order.
// Complexity: O(n).
func (s *Selection) IDs() []uint64 {
	out := make([]uint64, len(s.ids))
	copy(out, s.ids)

	return out
}

// Len reports how many ids are selected.
// Complexity: O(1).
func (s *Selection) Len() int {
	return len(s.ids)
}
