package timeutil

import (
	"testing"
	"time"
)

func TestParseSpanDefault(t *testing.T) {
	dur, label, err := ParseSpan("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 5*time.Second {
		t.Fatalf("expected 5s default, got %v", dur)
	}
	if label != "5s" {
		t.Fatalf("expected label 5s, got %s", label)
	}
}

func TestParseSpanComposite(t *testing.T) {
	dur, label, err := ParseSpan("1m30s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != time.Minute+30*time.Second {
		t.Fatalf("expected 1m30s, got %v", dur)
	}
	if label != "1m30s" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseSpanInvalid(t *testing.T) {
	if _, _, err := ParseSpan("soon"); err == nil {
		t.Fatalf("expected error for invalid span")
	}
}
