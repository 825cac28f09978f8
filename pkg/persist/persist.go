// Package persist owns durable storage for the habit list: a diskv-backed
// local adapter, the save dispatcher that routes between local and remote
// storage, and a change watcher for out-of-process edits.
package persist

import (
	"context"

	"tableflip.dev/streak/pkg/habit"
)

// Saver writes the full habit list. Implementations are best-effort from
// the UI's point of view; a failed save must never take the app down.
type Saver interface {
	Save(ctx context.Context, habits []*habit.Habit) error
}

// Loader reads the stored habit list. Absent or corrupt data yields an
// empty list, not an error.
type Loader interface {
	Load(ctx context.Context) ([]*habit.Habit, error)
}

// Session is the slice of the auth layer the dispatcher needs.
type Session interface {
	SignedIn() bool
}
