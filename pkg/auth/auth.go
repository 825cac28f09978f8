// Package auth tracks the signed-in session that decides whether saves go
// to the remote store or to local storage.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tableflip.dev/streak/pkg/persist"
)

var ErrBadToken = errors.New("auth: token is not a usable JWT")

// Session is a stored sign-in. The token is issued and verified by the
// remote backend; locally we only read its claims to route requests.
type Session struct {
	AccessToken string    `json:"access_token"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the session's token lifetime has passed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// EventType is a sign-in state transition.
type EventType int

const (
	SignedIn EventType = iota
	SignedOut
)

// Event notifies subscribers of a session transition.
type Event struct {
	Type    EventType
	Session *Session
}

// Provider owns the current session, persisted beside the habit list.
type Provider struct {
	mu         sync.Mutex
	dir        string
	session    *Session
	loaded     bool
	generation uint64
	subs       []func(Event)
}

// NewProvider roots session storage at dir (the local store base path).
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir}
}

func (p *Provider) path() string {
	return filepath.Join(p.dir, persist.SessionFile)
}

// Current returns the active session, if any. Expired or unreadable
// sessions read as signed-out.
func (p *Provider) Current() (*Session, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadLocked()
	if p.session == nil || p.session.Expired(time.Now()) {
		return nil, false
	}
	s := *p.session
	return &s, true
}

// SignedIn satisfies the save dispatcher's session check.
func (p *Provider) SignedIn() bool {
	_, ok := p.Current()
	return ok
}

// Generation increments on every sign-in and sign-out. Async results
// carry the generation they were started under so stale completions can
// be discarded after a mode switch.
func (p *Provider) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadLocked()
	return p.generation
}

// SignIn validates the token's shape, derives the user identity from its
// claims, and persists the session.
func (p *Provider) SignIn(token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrBadToken
	}

	claims := jwt.MapClaims{}
	// Verification belongs to the backend; locally the claims only route
	// requests, so an unverified parse is sufficient.
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadToken, err)
	}

	s := &Session{AccessToken: token}
	if sub, err := claims.GetSubject(); err == nil {
		s.UserID = sub
	}
	if s.UserID == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrBadToken)
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}

	p.mu.Lock()
	if err := p.writeLocked(s); err != nil {
		p.mu.Unlock()
		return nil, err
	}
	p.session = s
	p.loaded = true
	p.generation++
	subs := append([]func(Event){}, p.subs...)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(Event{Type: SignedIn, Session: s})
	}
	return s, nil
}

// SignOut clears the stored session. Signing out while signed out is a
// no-op.
func (p *Provider) SignOut() error {
	p.mu.Lock()
	p.loadLocked()
	had := p.session != nil
	p.session = nil
	p.generation++
	err := os.Remove(p.path())
	if err != nil && errors.Is(err, os.ErrNotExist) {
		err = nil
	}
	subs := append([]func(Event){}, p.subs...)
	p.mu.Unlock()

	if had {
		for _, fn := range subs {
			fn(Event{Type: SignedOut})
		}
	}
	return err
}

// Subscribe registers a callback for sign-in/out transitions.
func (p *Provider) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.subs = append(p.subs, fn)
	p.mu.Unlock()
}

// Invalidate drops the cached session so the next read hits the file.
// The watcher calls this when another process rewrites the session.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.loaded = false
	p.session = nil
	p.mu.Unlock()
}

func (p *Provider) loadLocked() {
	if p.loaded {
		return
	}
	p.loaded = true
	data, err := os.ReadFile(p.path())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "auth: read session: %v\n", err)
		}
		return
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		fmt.Fprintf(os.Stderr, "auth: corrupt session file, ignoring: %v\n", err)
		return
	}
	if s.AccessToken == "" || s.UserID == "" {
		return
	}
	p.session = &s
}

func (p *Provider) writeLocked(s *Session) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("auth: ensure base path: %w", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("auth: marshal session: %w", err)
	}
	path := p.path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("auth: write session: %w", err)
	}
	return os.Rename(tmp, path)
}
