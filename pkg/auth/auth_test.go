package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func testToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	enc := func(v any) string {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal token part: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(data)
	}
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	return fmt.Sprintf("%s.%s.%s", enc(header), enc(claims), base64.RawURLEncoding.EncodeToString([]byte("sig")))
}

func TestSignInReadsClaims(t *testing.T) {
	p := NewProvider(t.TempDir())
	exp := time.Now().Add(time.Hour)
	token := testToken(t, map[string]any{
		"sub":   "user-1",
		"email": "sam@example.com",
		"exp":   exp.Unix(),
	})

	s, err := p.SignIn(token)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if s.UserID != "user-1" || s.Email != "sam@example.com" {
		t.Fatalf("claims not read: %+v", s)
	}
	if !p.SignedIn() {
		t.Fatalf("expected signed-in state")
	}

	current, ok := p.Current()
	if !ok || current.AccessToken != token {
		t.Fatalf("current session mismatch")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	p := NewProvider(dir)
	token := testToken(t, map[string]any{"sub": "user-1"})
	if _, err := p.SignIn(token); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	fresh := NewProvider(dir)
	if !fresh.SignedIn() {
		t.Fatalf("session should persist across providers")
	}
}

func TestExpiredSessionReadsAsSignedOut(t *testing.T) {
	p := NewProvider(t.TempDir())
	token := testToken(t, map[string]any{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	if _, err := p.SignIn(token); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if p.SignedIn() {
		t.Fatalf("expired token must read as signed out")
	}
}

func TestSignOutAndGeneration(t *testing.T) {
	p := NewProvider(t.TempDir())
	var events []EventType
	p.Subscribe(func(ev Event) { events = append(events, ev.Type) })

	gen0 := p.Generation()
	if _, err := p.SignIn(testToken(t, map[string]any{"sub": "user-1"})); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := p.SignOut(); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if p.SignedIn() {
		t.Fatalf("expected signed-out state")
	}
	if p.Generation() == gen0 {
		t.Fatalf("generation must advance on transitions")
	}
	if len(events) != 2 || events[0] != SignedIn || events[1] != SignedOut {
		t.Fatalf("unexpected events: %v", events)
	}
	// Idempotent: a second sign-out is fine and emits nothing.
	if err := p.SignOut(); err != nil {
		t.Fatalf("second sign out: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("sign-out while signed out should not notify")
	}
}

func TestSignInRejectsGarbage(t *testing.T) {
	p := NewProvider(t.TempDir())
	if _, err := p.SignIn("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
	if _, err := p.SignIn(testToken(t, map[string]any{"email": "x@y.z"})); err == nil {
		t.Fatalf("expected error when sub claim is missing")
	}
}
