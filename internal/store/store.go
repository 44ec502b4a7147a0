// Package store provides the in-memory ordered task store.
//
// The store is the source of truth for the session. It is mutated only from
// the editor's single event loop, so it carries no locking; persistence is
// handled separately by the taskfile package.
package store

import (
	"strings"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

// Store holds the ordered task sequence for one editor session.
type Store struct {
	tasks   []domain.Task
	nextID  int
	version int
	dirty   bool
}

// New creates an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// FromTasks creates a store seeded with the given tasks.
// Tasks without an ID are assigned sequential IDs in order; the internal
// counter continues past the highest ID so deleted IDs are never reused.
func FromTasks(tasks []domain.Task) *Store {
	s := New()
	for _, t := range tasks {
		if t.ID <= 0 {
			t.ID = s.nextID
		}
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
		if !t.Status.IsValid() {
			t.Status = domain.StatusPending
		}
		s.tasks = append(s.tasks, t)
	}
	return s
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends a new pending task and returns its ID.
func (s *Store) Add(description string) (int, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, domain.ErrEmptyDescription
	}
	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, domain.Task{
		ID:          id,
		Description: description,
		Status:      domain.StatusPending,
	})
	s.mutated()
	return id, nil
}

// Get returns the task with the given ID.
func (s *Store) Get(id int) (domain.Task, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// TaskAt returns the task at the given position in the ordered sequence.
func (s *Store) TaskAt(index int) (domain.Task, bool) {
	if index < 0 || index >= len(s.tasks) {
		return domain.Task{}, false
	}
	return s.tasks[index], true
}

// IndexOf returns the position of the task with the given ID, or -1.
func (s *Store) IndexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// UpdateStatus sets the status of a task.
func (s *Store) UpdateStatus(id int, status domain.Status) error {
	if !status.IsValid() {
		return domain.ErrInvalidStatus
	}
	i := s.IndexOf(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	s.tasks[i].Status = status
	s.mutated()
	return nil
}

// ToggleStatus advances a task's status through the closed cycle and
// returns the new status.
func (s *Store) ToggleStatus(id int) (domain.Status, error) {
	i := s.IndexOf(id)
	if i < 0 {
		return "", domain.ErrTaskNotFound
	}
	s.tasks[i].Status = s.tasks[i].Status.Next()
	s.mutated()
	return s.tasks[i].Status, nil
}

// UpdateDescription replaces a task's description.
func (s *Store) UpdateDescription(id int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyDescription
	}
	i := s.IndexOf(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	s.tasks[i].Description = text
	s.mutated()
	return nil
}

// Remove deletes a task, preserving the relative order of the rest.
func (s *Store) Remove(id int) error {
	i := s.IndexOf(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.mutated()
	return nil
}

// Snapshot returns a copy of the ordered task sequence.
// Mutating the returned slice does not affect the store.
func (s *Store) Snapshot() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Dirty reports whether the store has mutations not yet saved.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkClean clears the dirty flag after a successful save.
func (s *Store) MarkClean() {
	s.dirty = false
}

// Version returns the mutation counter. It increments on every mutating
// operation, so a caller that saved a snapshot can later tell whether the
// store still matches it.
func (s *Store) Version() int {
	return s.version
}

func (s *Store) mutated() {
	s.version++
	s.dirty = true
}
