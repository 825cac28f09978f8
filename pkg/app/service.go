// Package app wires the habit store, persistence, and sync together and
// exposes the high-level operations the CLI and TUI share.
package app

import (
	"context"
	"strings"

	"tableflip.dev/streak/pkg/habit"
	"tableflip.dev/streak/pkg/store"
	"tableflip.dev/streak/pkg/timeutil"
)

// ListSaver is the save dispatcher: best-effort, target decided inside.
type ListSaver interface {
	Save(ctx context.Context, habits []*habit.Habit)
}

// ListLoader reads the locally stored habit list.
type ListLoader interface {
	Load(ctx context.Context) ([]*habit.Habit, error)
}

// RemoteFetcher pulls the remote list; empty when signed out or failing.
type RemoteFetcher interface {
	Fetch(ctx context.Context) []*habit.Habit
}

// Sessions is the slice of the auth provider the service needs.
type Sessions interface {
	SignedIn() bool
	Generation() uint64
}

// Service provides high-level habit operations. It assumes the app's
// single-threaded event loop: store mutations never interleave because
// no operation suspends between mutating and dispatching the save.
type Service struct {
	Store   *store.Store
	Saver   ListSaver
	Local   ListLoader
	Remote  RemoteFetcher
	Session Sessions
}

// Hydration carries a fetched list plus the auth generation it was
// started under, so a slow fetch resolving after a sign-in/out switch
// can be detected and dropped.
type Hydration struct {
	Habits     []*habit.Habit
	Generation uint64
}

// Hydrate reads the full list from the session's storage target: remote
// rows when signed in, local storage otherwise. Failures surface as an
// empty list, never an error.
func (s *Service) Hydrate(ctx context.Context) Hydration {
	h := Hydration{Generation: s.generation()}
	if s.Session != nil && s.Session.SignedIn() && s.Remote != nil {
		h.Habits = s.Remote.Fetch(ctx)
		return h
	}
	if s.Local != nil {
		habits, err := s.Local.Load(ctx)
		if err == nil {
			h.Habits = habits
		}
	}
	return h
}

// ApplyHydration swaps the store contents if the result is still fresh.
// A stale result (auth mode changed since the fetch started) is
// discarded and the caller should hydrate again. The caller must follow
// a successful apply with a full render.
func (s *Service) ApplyHydration(h Hydration) bool {
	if h.Generation != s.generation() {
		return false
	}
	s.Store.ReplaceAll(h.Habits)
	return true
}

// AddHabit validates, inserts at the front of the list, and persists.
func (s *Service) AddHabit(ctx context.Context, title, description, color, iconID string) (*habit.Habit, error) {
	h, err := habit.New(title, description, color, iconID, habit.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Store.InsertAtFront(h); err != nil {
		return nil, err
	}
	s.save(ctx)
	return h, nil
}

// EditHabit applies a patch to the identified habit and persists. A
// missing id is a silent no-op; a validation failure blocks the edit.
func (s *Service) EditHabit(ctx context.Context, id string, p habit.Patch) error {
	if _, _, ok := s.Store.FindByID(id); !ok {
		return nil
	}
	if err := s.Store.UpdateByID(id, p); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// CompletionPatch describes the minimal visual update after a toggle:
// one grid cell and the habit's toggle control, not a full re-render.
type CompletionPatch struct {
	HabitID   string
	Day       string
	Completed bool
}

// ToggleCompletion flips one day's membership for one habit and
// persists the full list. day defaults to the local calendar day when
// empty. A missing habit is silently ignored.
func (s *Service) ToggleCompletion(ctx context.Context, id, day string) (CompletionPatch, bool) {
	h, _, ok := s.Store.FindByID(id)
	if !ok {
		return CompletionPatch{}, false
	}
	if day == "" {
		day = timeutil.Today()
	}
	completed := h.CompletedDates.Toggle(day)
	s.save(ctx)
	return CompletionPatch{HabitID: id, Day: day, Completed: completed}, true
}

// MoveHabit commits a reorder: a single-element move to index, then an
// unconditional save so even a no-op reorder reconverges storage.
func (s *Service) MoveHabit(ctx context.Context, id string, index int) bool {
	moved := s.Store.MoveToIndex(id, index)
	s.save(ctx)
	return moved
}

// RemoveHabit permanently deletes the habit and persists. Removal always
// saves: a permanent delete that only lives in memory would be lost to
// process exit.
func (s *Service) RemoveHabit(ctx context.Context, id string) bool {
	if !s.Store.RemoveByID(id) {
		return false
	}
	s.save(ctx)
	return true
}

// ResolveHabit finds a habit by exact id, then by unique
// case-insensitive title prefix. Ambiguous prefixes resolve to nothing.
func (s *Service) ResolveHabit(ref string) (*habit.Habit, bool) {
	if h, _, ok := s.Store.FindByID(ref); ok {
		return h, true
	}
	prefix := strings.ToLower(strings.TrimSpace(ref))
	if prefix == "" {
		return nil, false
	}
	var match *habit.Habit
	for _, h := range s.Store.GetAll() {
		if strings.HasPrefix(strings.ToLower(h.Title), prefix) {
			if match != nil {
				return nil, false
			}
			match = h
		}
	}
	return match, match != nil
}

func (s *Service) save(ctx context.Context) {
	if s.Saver == nil {
		return
	}
	s.Saver.Save(ctx, s.Store.GetAll())
}

func (s *Service) generation() uint64 {
	if s.Session == nil {
		return 0
	}
	return s.Session.Generation()
}
