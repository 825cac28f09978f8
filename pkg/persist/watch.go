package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a storage change notification.
type EventType int

const (
	// EventHabitsChanged indicates the stored habit list was rewritten,
	// typically by another process sharing the same base path.
	EventHabitsChanged EventType = iota

	// EventSessionChanged signals that the session file changed and the
	// auth state should be re-read.
	EventSessionChanged
)

// Event is emitted by Watch when the backing files change.
type Event struct {
	Type EventType
}

// Watch streams change events until ctx is cancelled. Callers should
// drain the returned channel to avoid losing notifications. The channel
// is closed once ctx is done or the watcher fails unrecoverably.
func (l *Local) Watch(ctx context.Context) (<-chan Event, error) {
	if l.basePath == "" {
		return nil, errors.New("persist: base path unknown")
	}

	if err := os.MkdirAll(l.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("persist: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("persist: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "persist: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(l.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("persist: watch %s: %w", l.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events when the consumer lags; the next refresh
				// re-reads the full list anyway, and dropping keeps
				// filesystem storms from blocking the watcher goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher trouble as a habits refresh so clients
				// stay in sync even when the change can't be classified.
				throttle.Enqueue(Event{Type: EventHabitsChanged}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				switch filepath.Base(evt.Name) {
				case habitsKey:
					throttle.Enqueue(Event{Type: EventHabitsChanged}, send)
				case SessionFile:
					throttle.Enqueue(Event{Type: EventSessionChanged}, send)
				}
			}
		}
	}()

	return events, nil
}

// SessionFile is the session token file name kept beside the habit list.
const SessionFile = "session.json"

// eventThrottle coalesces rapid change notifications so the UI redraws
// once per burst of filesystem activity instead of on every write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType := range pending {
		send(Event{Type: eventType})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
