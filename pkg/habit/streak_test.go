package habit

import "testing"

func TestStreakThrough(t *testing.T) {
	done := NewDaySet("2024-06-13", "2024-06-14", "2024-06-15")
	if got := StreakThrough(done, "2024-06-15"); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
	// Today not yet ticked: the run through yesterday still counts.
	if got := StreakThrough(done, "2024-06-16"); got != 3 {
		t.Fatalf("expected streak 3 through yesterday, got %d", got)
	}
	if got := StreakThrough(done, "2024-06-18"); got != 0 {
		t.Fatalf("expected broken streak, got %d", got)
	}
	if got := StreakThrough(done, "garbage"); got != 0 {
		t.Fatalf("bad day keys never count, got %d", got)
	}
}
