package habit

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewValidation(t *testing.T) {
	now := Now()
	if _, err := New("", "daily reading", "", "", now); err != ErrTitleRequired {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := New("Read", "   ", "", "", now); err != ErrDescriptionRequired {
		t.Fatalf("expected ErrDescriptionRequired, got %v", err)
	}
	if _, err := New("Read", "daily reading", "red", "", now); err != ErrBadColor {
		t.Fatalf("expected ErrBadColor, got %v", err)
	}

	h, err := New("Read", "daily reading", "", "book", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.ID == "" {
		t.Fatalf("expected generated id")
	}
	if h.Color != DefaultColor {
		t.Fatalf("expected default color, got %s", h.Color)
	}
	if h.CompletedDates == nil || h.CompletedDates.Len() != 0 {
		t.Fatalf("expected empty day set")
	}
}

func TestDaySetToggle(t *testing.T) {
	s := NewDaySet()
	if !s.Toggle("2025-03-01") {
		t.Fatalf("first toggle should add")
	}
	if s.Toggle("2025-03-01") {
		t.Fatalf("second toggle should remove")
	}
	if s.Len() != 0 {
		t.Fatalf("double toggle should restore original membership, len=%d", s.Len())
	}
}

func TestDaySetNoDuplicates(t *testing.T) {
	s := NewDaySet("2025-01-01", "2025-01-01", "2025-01-02")
	if s.Len() != 2 {
		t.Fatalf("expected 2 unique days, got %d", s.Len())
	}
	s.Add("2025-01-02")
	if s.Len() != 2 {
		t.Fatalf("re-adding a member must not grow the set")
	}
}

func TestDaySetJSONRoundTrip(t *testing.T) {
	s := NewDaySet("2025-02-03", "2025-01-01")
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["2025-01-01","2025-02-03"]` {
		t.Fatalf("expected sorted array form, got %s", data)
	}
	var back DaySet
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Len() != 2 || !back.Has("2025-02-03") {
		t.Fatalf("round trip lost members: %v", back.Keys())
	}
}

func TestMigrateLegacyCompletions(t *testing.T) {
	raw := []byte(`{"title":"Stretch","description":"morning stretch","color":"#aabbcc","completions":{"2024-06-01":true,"2024-06-02":false}}`)
	var h Habit
	if err := json.Unmarshal(raw, &h); err != nil {
		t.Fatalf("unmarshal legacy record: %v", err)
	}
	if !h.Migrate(Now()) {
		t.Fatalf("expected migration to report a change")
	}
	if !h.CompletedDates.Has("2024-06-01") {
		t.Fatalf("true legacy entry should become a member")
	}
	if h.CompletedDates.Has("2024-06-02") {
		t.Fatalf("false legacy entry should be dropped")
	}
	if h.Completions != nil {
		t.Fatalf("legacy map should be cleared after migration")
	}
	if h.CreatedAt.IsZero() {
		t.Fatalf("missing createdAt should be back-filled")
	}
	if h.ID == "" {
		t.Fatalf("missing id should be back-filled")
	}
	if h.Migrate(Now()) {
		t.Fatalf("second migration should be a no-op")
	}
}

func TestApplyPatchPreservesIdentity(t *testing.T) {
	h, err := New("Read", "daily reading", "#112233", "book", Timestamp{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	h.CompletedDates.Add("2024-02-01")
	id, created := h.ID, h.CreatedAt

	title := "Read more"
	bad := ""
	if err := h.Apply(Patch{Title: &bad}); err != ErrTitleRequired {
		t.Fatalf("empty title must block the edit, got %v", err)
	}
	if h.Title != "Read" {
		t.Fatalf("failed patch must not partially apply")
	}
	if err := h.Apply(Patch{Title: &title}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if h.ID != id || !h.CreatedAt.Equal(created.Time) || !h.CompletedDates.Has("2024-02-01") {
		t.Fatalf("patch must preserve id, createdAt, and completions")
	}
}

func TestTimestampCodec(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)}
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, ts)
	}
	var zero Timestamp
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("empty timestamp should decode to zero: %v", err)
	}
	if !zero.IsZero() {
		t.Fatalf("expected zero time")
	}
}
