package ratelimit

import (
	"sync"
	"time"
)

// Limiter enforces one action per user per window. Entries are pruned lazily
// on each call, so an idle limiter holds at most one stale entry per user.
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	last   map[int64]time.Time
	now    func() time.Time
}

func New(window time.Duration) *Limiter {
	return &Limiter{
		window: window,
		last:   make(map[int64]time.Time),
		now:    time.Now,
	}
}

// Allow reports whether the user may act now and, if so, starts their window.
func (l *Limiter) Allow(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if seen, ok := l.last[userID]; ok && now.Sub(seen) < l.window {
		return false
	}
	l.last[userID] = now
	l.prune(now)
	return true
}

func (l *Limiter) prune(now time.Time) {
	for id, seen := range l.last {
		if now.Sub(seen) >= l.window {
			delete(l.last, id)
		}
	}
}
