// Package sched abstracts the timed callbacks behind the storefront's
// simulated delays so tests can advance virtual time instead of sleeping.
package sched

import (
	"sync"
	"time"
)

// Timer is a scheduled callback that can be stopped before it fires.
// Stop reports whether it prevented the callback from running.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn after d elapses
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real schedules on the wall clock
type Real struct{}

func (Real) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Manual is a test scheduler. Callbacks fire only when Advance moves the
// virtual clock past their deadline, on the caller's goroutine.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	pending []*manualTimer
}

type manualTimer struct {
	sched    *Manual
	deadline time.Duration
	fn       func()
	stopped  bool
	fired    bool
}

// NewManual returns a manual scheduler at virtual time zero
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{sched: m, deadline: m.now + d, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the virtual clock forward and fires every timer whose
// deadline has passed, in scheduling order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []*manualTimer
	remaining := m.pending[:0]
	for _, t := range m.pending {
		if !t.stopped && t.deadline <= m.now {
			t.fired = true
			due = append(due, t)
			continue
		}
		remaining = append(remaining, t)
	}
	m.pending = remaining
	m.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

func (t *manualTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
