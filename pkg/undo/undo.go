// Package undo implements the timed soft-delete used by the habit stack:
// a deletion hides the card, shows an undo affordance, and only becomes
// permanent once a grace period elapses without an undo.
package undo

import (
	"sync"
	"time"
)

// DefaultGrace is how long a pending deletion can be undone.
const DefaultGrace = 5 * time.Second

// Controller runs the Live -> PendingDelete -> {Removed | Live} machine.
// At most one deletion is pending at a time; a second request finalizes
// the first immediately. Finalize is called exactly once per removal,
// off the caller's goroutine when the timer fires.
type Controller struct {
	mu       sync.Mutex
	grace    time.Duration
	pending  string
	timer    *time.Timer
	finalize func(id string)
}

// New builds a controller. The finalize callback performs the real
// removal (store mutation, persistence, re-render); grace <= 0 selects
// the default.
func New(grace time.Duration, finalize func(id string)) *Controller {
	if grace <= 0 {
		grace = DefaultGrace
	}
	return &Controller{grace: grace, finalize: finalize}
}

// RequestDelete moves id into PendingDelete. An already-pending deletion
// for a different id is finalized first; re-requesting the same id just
// restarts its grace period.
func (c *Controller) RequestDelete(id string) {
	if id == "" {
		return
	}
	var finalizeFirst string

	c.mu.Lock()
	if c.pending != "" && c.pending != id {
		c.stopTimerLocked()
		finalizeFirst = c.pending
		c.pending = ""
	}
	if c.pending == id {
		// Restart the clock for the same habit.
		c.stopTimerLocked()
	}
	c.pending = id
	c.timer = time.AfterFunc(c.grace, func() { c.expire(id) })
	c.mu.Unlock()

	if finalizeFirst != "" && c.finalize != nil {
		c.finalize(finalizeFirst)
	}
}

// Undo cancels the pending deletion for id and reports whether there was
// one. The store was never mutated, so nothing else needs to happen.
func (c *Controller) Undo(id string) bool {
	c.mu.Lock()
	if c.pending != id || id == "" {
		c.mu.Unlock()
		return false
	}
	c.stopTimerLocked()
	c.pending = ""
	c.mu.Unlock()
	return true
}

// Pending returns the id currently awaiting deletion, if any.
func (c *Controller) Pending() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending, c.pending != ""
}

// Flush finalizes any pending deletion immediately. Called on shutdown
// so a removal can't be lost to process exit during the grace window.
func (c *Controller) Flush() {
	c.mu.Lock()
	id := c.pending
	c.stopTimerLocked()
	c.pending = ""
	c.mu.Unlock()

	if id != "" && c.finalize != nil {
		c.finalize(id)
	}
}

func (c *Controller) expire(id string) {
	c.mu.Lock()
	if c.pending != id {
		// Undone or superseded after the timer fired; nothing to do.
		c.mu.Unlock()
		return
	}
	c.pending = ""
	c.timer = nil
	c.mu.Unlock()

	if c.finalize != nil {
		c.finalize(id)
	}
}

// stopTimerLocked is idempotent: stopping a fired or absent timer is a
// no-op.
func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
