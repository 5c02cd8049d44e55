// Package ratelimit implements a fixed-window request limiter keyed by caller
// identity. Vision calls are the expensive resource being protected, so the
// window is long (a day) and the caps are small.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per key inside a fixed window. The first request
// after a window expires starts a fresh window rather than sliding the old
// one. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	window  time.Duration
	now     func() time.Time

	stopSweeper chan struct{}
	stopOnce    sync.Once
}

// New creates a limiter with the given window.
func New(window time.Duration) *Limiter {
	return &Limiter{
		entries:     make(map[string]*entry),
		window:      window,
		now:         time.Now,
		stopSweeper: make(chan struct{}),
	}
}

// Allow records a request for key and reports whether it fits under max for
// the current window. A request over the cap is counted as denied, not
// queued.
func (l *Limiter) Allow(key string, max int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || !now.Before(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if e.count >= max {
		return false
	}
	e.count++
	return true
}

// RetryAfter returns how long until key's current window expires. Zero means
// the key is not limited right now.
func (l *Limiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return 0
	}
	d := e.resetAt.Sub(l.now())
	if d < 0 {
		return 0
	}
	return d
}

// Sweep drops entries whose window has expired. Only expired entries are
// touched; live windows keep their counts.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if !now.Before(e.resetAt) {
			delete(l.entries, key)
		}
	}
}

// StartSweeper runs Sweep every interval until Stop is called.
func (l *Limiter) StartSweeper(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Sweep()
			case <-l.stopSweeper:
				return
			}
		}
	}()
}

// Stop shuts down the background sweeper. Idempotent.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopSweeper) })
}
