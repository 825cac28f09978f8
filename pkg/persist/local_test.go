package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/streak/pkg/habit"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string           { return c.path }
func (c *testConfig) RemoteURL() string          { return "" }
func (c *testConfig) RemoteAnonKey() string      { return "" }
func (c *testConfig) GracePeriod() time.Duration { return 5 * time.Second }

func openLocal(t *testing.T) *Local {
	t.Helper()
	l, err := Open(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return l
}

func TestLoadEmpty(t *testing.T) {
	l := openLocal(t)
	habits, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(habits) != 0 {
		t.Fatalf("expected empty list, got %d", len(habits))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	l := openLocal(t)
	ctx := context.Background()

	a, err := habit.New("Read", "daily reading", "#112233", "book", habit.Now())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a.CompletedDates.Add("2025-01-01")
	a.CompletedDates.Add("2025-01-03")
	b, err := habit.New("Run", "morning run", "", "run", habit.Now())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := l.Save(ctx, []*habit.Habit{a, b}); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := l.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(back))
	}
	if back[0].ID != a.ID || back[1].ID != b.ID {
		t.Fatalf("order not preserved")
	}
	if !back[0].CompletedDates.Has("2025-01-03") || back[0].CompletedDates.Len() != 2 {
		t.Fatalf("completed dates lost: %v", back[0].CompletedDates.Keys())
	}
	if back[0].Title != "Read" || back[0].Color != "#112233" {
		t.Fatalf("fields lost on round trip")
	}
}

func TestLoadCorrupt(t *testing.T) {
	l := openLocal(t)
	if err := os.WriteFile(filepath.Join(l.BasePath(), habitsKey), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt payload: %v", err)
	}
	habits, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt payload must not error: %v", err)
	}
	if len(habits) != 0 {
		t.Fatalf("corrupt payload should read as empty")
	}
}

func TestLoadMigratesLegacySchema(t *testing.T) {
	l := openLocal(t)
	ctx := context.Background()
	legacy := `[{"id":"h1","title":"Stretch","description":"morning stretch","color":"#aabbcc","completions":{"2024-06-01":true,"2024-06-02":false}}]`
	if err := os.WriteFile(filepath.Join(l.BasePath(), habitsKey), []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy payload: %v", err)
	}

	habits, err := l.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}
	h := habits[0]
	if !h.CompletedDates.Has("2024-06-01") || h.CompletedDates.Has("2024-06-02") {
		t.Fatalf("legacy completion map not migrated: %v", h.CompletedDates.Keys())
	}
	if h.CreatedAt.IsZero() {
		t.Fatalf("createdAt should be back-filled")
	}

	// The migration is one-time: the stored form is rewritten.
	again, err := l.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again[0].Completions != nil {
		t.Fatalf("stored payload should no longer carry the legacy map")
	}
	raw, err := os.ReadFile(filepath.Join(l.BasePath(), habitsKey))
	if err != nil {
		t.Fatalf("read stored payload: %v", err)
	}
	if string(raw) == legacy {
		t.Fatalf("migrated form was not written back")
	}
}

func TestWatchSeesHabitWrites(t *testing.T) {
	l := openLocal(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := l.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	h, err := habit.New("Read", "daily reading", "", "", habit.Now())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := l.Save(ctx, []*habit.Habit{h}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatalf("event channel closed early")
		}
		if ev.Type != EventHabitsChanged {
			t.Fatalf("expected habits change, got %v", ev.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}
}
