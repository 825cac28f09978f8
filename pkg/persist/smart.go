package persist

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/streak/pkg/habit"
)

// SmartSaver routes each save to exactly one backend: the remote adapter
// when a session is present, the local adapter otherwise. Every caller
// that persists the list goes through here so the target is decided in
// one place.
type SmartSaver struct {
	Session Session
	Remote  Saver
	Local   Saver
}

// Save persists the full list. Best-effort: failures are logged and
// swallowed so persistence can never crash the UI.
func (s *SmartSaver) Save(ctx context.Context, habits []*habit.Habit) {
	target := s.Local
	if s.Session != nil && s.Session.SignedIn() && s.Remote != nil {
		target = s.Remote
	}
	if target == nil {
		return
	}
	if err := target.Save(ctx, habits); err != nil {
		fmt.Fprintf(os.Stderr, "persist: save habits: %v\n", err)
	}
}
