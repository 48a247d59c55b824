package search

import (
	"sync"

	"github.com/taskflowhq/taskflow-cli/internal/client/models"
)

// Selection is the set of candidates toggled for assignment, kept in
// selection order. Alongside the id set it caches each member's detail,
// captured from the visible candidate list at the moment of selection, so
// a candidate that later drops out of the result page keeps its name.
type Selection struct {
	mu      sync.Mutex
	ids     []int64
	details []models.Member
}

func NewSelection() *Selection {
	return &Selection{}
}

// Toggle flips membership of id. Selecting captures the matching detail
// from visible (if present); deselecting removes both the id and its cached
// detail. Returns true when the id is selected after the call.
func (s *Selection) Toggle(id int64, visible []models.Member) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			for j, d := range s.details {
				if d.ID == id {
					s.details = append(s.details[:j], s.details[j+1:]...)
					break
				}
			}
			return false
		}
	}

	s.ids = append(s.ids, id)
	for _, m := range visible {
		if m.ID == id {
			s.details = append(s.details, m)
			break
		}
	}
	return true
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

// Details returns the cached details of the selected members.
func (s *Selection) Details() []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Member, len(s.details))
	copy(out, s.details)
	return out
}

func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Clear empties the selection, typically after a successful commit.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.details = nil
}
