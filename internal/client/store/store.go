// Package store is the shared in-memory holder for the three resource
// collections (projects, tasks, members) read and mutated by the dashboard
// views. It is a passive container: no network calls originate here, and
// no operation can fail.
package store

import "github.com/taskflowhq/taskflow-cli/internal/client/models"

// Store bundles the three independent collections. It is constructed once
// at application start and passed explicitly to the views that need it.
type Store struct {
	Projects *Collection[models.Project]
	Tasks    *Collection[models.Task]
	Members  *Collection[models.Member]
}

func New() *Store {
	return &Store{
		Projects: NewCollection[models.Project](),
		Tasks:    NewCollection[models.Task](),
		Members:  NewCollection[models.Member](),
	}
}

// ClearAll empties all three collections. Session identity is a separate
// concern and is never touched here.
func (s *Store) ClearAll() {
	s.Projects.Clear()
	s.Tasks.Clear()
	s.Members.Clear()
}
