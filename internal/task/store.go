package task

import (
	"slices"
	"strings"
)

// maxIDAttempts bounds how often Add re-draws when the generator returns an
// ID that is already taken.
const maxIDAttempts = 16

// idObserver is implemented by generators that can skip IDs already in use.
type idObserver interface {
	Observe(id ID)
}

// Store is the task collection, newest first. It is not safe for concurrent
// use; a single controller owns it.
type Store struct {
	ids   IDGenerator
	tasks []Task
}

// NewStore returns a store seeded with the given tasks in order. Seed tasks
// without an ID get one from ids. Tasks with blank text or category, or with
// an ID already present, are dropped.
func NewStore(ids IDGenerator, seed ...Task) *Store {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	s := &Store{ids: ids, tasks: make([]Task, 0, len(seed))}
	for _, t := range seed {
		t.Text = strings.TrimSpace(t.Text)
		t.Category = strings.TrimSpace(t.Category)
		if t.Text == "" || t.Category == "" {
			continue
		}
		if t.ID == "" {
			id, ok := s.freshID()
			if !ok {
				continue
			}
			t.ID = id
		} else if s.index(t.ID) >= 0 {
			continue
		}
		if o, ok := ids.(idObserver); ok {
			o.Observe(t.ID)
		}
		s.tasks = append(s.tasks, t)
	}
	return s
}

// Add creates a task at the front of the collection. It reports false and
// changes nothing when text or category is blank after trimming.
func (s *Store) Add(text, category string) (ID, bool) {
	text = strings.TrimSpace(text)
	category = strings.TrimSpace(category)
	if text == "" || category == "" {
		return "", false
	}
	id, ok := s.freshID()
	if !ok {
		return "", false
	}
	s.tasks = slices.Insert(s.tasks, 0, Task{ID: id, Text: text, Category: category})
	return id, true
}

// Remove deletes the task with id. Unknown IDs are ignored.
func (s *Store) Remove(id ID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}

// Toggle flips the completion flag of the task with id. Unknown IDs are ignored.
func (s *Store) Toggle(id ID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true
}

// Get returns the task with id.
func (s *Store) Get(id ID) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the collection size.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the collection in stored order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

func (s *Store) index(id ID) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func (s *Store) freshID() (ID, bool) {
	for range maxIDAttempts {
		id := s.ids.NewID()
		if id != "" && s.index(id) < 0 {
			return id, true
		}
	}
	return "", false
}
