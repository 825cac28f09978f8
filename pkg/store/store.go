// Package store owns the single in-memory habit list. Every screen and
// persistence adapter reads through it; nothing else keeps a durable copy.
package store

import (
	"errors"

	"tableflip.dev/streak/pkg/habit"
)

var ErrDuplicateID = errors.New("store: duplicate habit id")

// Store is the ordered habit list. Mutators are synchronous and leave the
// list valid: unique ids, no gaps. Order is the authoritative display and
// persistence order.
type Store struct {
	habits []*habit.Habit
}

func New(habits ...*habit.Habit) *Store {
	s := &Store{}
	s.ReplaceAll(habits)
	return s
}

func (s *Store) Len() int {
	return len(s.habits)
}

// GetAll returns the list in order. The slice is a copy; the habits are
// the live records.
func (s *Store) GetAll() []*habit.Habit {
	out := make([]*habit.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// FindByID returns the habit, its position, and whether it exists.
func (s *Store) FindByID(id string) (*habit.Habit, int, bool) {
	for i, h := range s.habits {
		if h.ID == id {
			return h, i, true
		}
	}
	return nil, -1, false
}

// InsertAtFront places a new habit at the head of the list.
func (s *Store) InsertAtFront(h *habit.Habit) error {
	if h == nil {
		return errors.New("store: nil habit")
	}
	if _, _, ok := s.FindByID(h.ID); ok {
		return ErrDuplicateID
	}
	s.habits = append([]*habit.Habit{h}, s.habits...)
	return nil
}

// UpdateByID applies an edit patch to the habit. A missing id or a
// validation failure leaves the list untouched.
func (s *Store) UpdateByID(id string, p habit.Patch) error {
	h, _, ok := s.FindByID(id)
	if !ok {
		return nil
	}
	return h.Apply(p)
}

// RemoveByID deletes the habit and reports whether it was present.
func (s *Store) RemoveByID(id string) bool {
	_, i, ok := s.FindByID(id)
	if !ok {
		return false
	}
	s.habits = append(s.habits[:i], s.habits[i+1:]...)
	return true
}

// MoveToIndex performs a single-element move so the habit lands at
// newIndex, preserving the relative order of everything else. The index
// is clamped to the list bounds.
func (s *Store) MoveToIndex(id string, newIndex int) bool {
	h, from, ok := s.FindByID(id)
	if !ok {
		return false
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(s.habits)-1 {
		newIndex = len(s.habits) - 1
	}
	if newIndex == from {
		return true
	}
	s.habits = append(s.habits[:from], s.habits[from+1:]...)
	rest := s.habits[newIndex:]
	s.habits = append(s.habits[:newIndex:newIndex], h)
	s.habits = append(s.habits, rest...)
	return true
}

// ReplaceAll swaps the whole list identity. Only hydration and
// login/logout transitions may use it, and a full render must follow.
// Duplicate ids in the incoming list are dropped, first occurrence wins.
func (s *Store) ReplaceAll(habits []*habit.Habit) {
	next := make([]*habit.Habit, 0, len(habits))
	seen := make(map[string]struct{}, len(habits))
	for _, h := range habits {
		if h == nil {
			continue
		}
		if _, dup := seen[h.ID]; dup {
			continue
		}
		seen[h.ID] = struct{}{}
		next = append(next, h)
	}
	s.habits = next
}
