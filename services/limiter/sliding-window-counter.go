package limiter

import (
	"sync"
	"time"
)

// slidingWindowCounter keeps per identity the admitted count of the current
// and the previous window and estimates the sliding-horizon load as
//
//	current + previous * (overlap fraction of the previous window)
//
// Approximate, with overshoot bounded by the estimate error, but O(1) memory
// per identity. Used for the high-volume, long-window policies.
type slidingWindowCounter struct {
	policy Policy
	clock  Clock
	shards [shardCount]counterShard
}

type counterShard struct {
	mu      sync.Mutex
	entries map[string]*counterEntry
}

type counterEntry struct {
	windowStart time.Time
	current     int
	previous    int
}

func newSlidingWindowCounter(policy Policy, clock Clock) *slidingWindowCounter {
	l := &slidingWindowCounter{policy: policy, clock: clock}
	for i := range l.shards {
		l.shards[i].entries = make(map[string]*counterEntry)
	}
	return l
}

func (l *slidingWindowCounter) Policy() Policy {
	return l.policy
}

func (l *slidingWindowCounter) Check(identity string) Result {
	shard := &l.shards[shardIndex(identity)]
	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := l.clock.Now()
	window := l.policy.Window

	entry, exists := shard.entries[identity]
	if !exists {
		entry = &counterEntry{windowStart: now.Truncate(window)}
		shard.entries[identity] = entry
	}

	entry.advance(now, window)

	elapsed := now.Sub(entry.windowStart)
	if elapsed < 0 {
		// Clock went backwards, treat as the start of the window instead
		// of letting a negative fraction inflate capacity.
		elapsed = 0
	}
	overlap := 1 - float64(elapsed)/float64(window)

	estimated := float64(entry.current) + float64(entry.previous)*overlap

	if estimated < float64(l.policy.Rate) {
		entry.current++
		remaining := l.policy.Rate - int(estimated) - 1
		if remaining < 0 {
			remaining = 0
		}
		return Result{
			Allowed:   true,
			Remaining: remaining,
			Policy:    l.policy.Name,
		}
	}

	retryAfter := entry.windowStart.Add(window).Sub(now)
	if retryAfter <= 0 || retryAfter > window {
		retryAfter = window
	}

	return Result{
		Allowed:    false,
		Remaining:  0,
		RetryAfter: retryAfter,
		Policy:     l.policy.Name,
	}
}

func (l *slidingWindowCounter) Sweep() int {
	now := l.clock.Now()
	removed := 0

	for i := range l.shards {
		shard := &l.shards[i]

		shard.mu.Lock()
		candidates := make([]string, 0, len(shard.entries))
		for identity := range shard.entries {
			candidates = append(candidates, identity)
		}
		shard.mu.Unlock()

		for _, identity := range candidates {
			shard.mu.Lock()
			if entry, exists := shard.entries[identity]; exists {
				entry.advance(now, l.policy.Window)
				if entry.current == 0 && entry.previous == 0 {
					delete(shard.entries, identity)
					removed++
				}
			}
			shard.mu.Unlock()
		}
	}

	return removed
}

func (e *counterEntry) advance(now time.Time, window time.Duration) {
	current := now.Truncate(window)

	switch {
	case current.Equal(e.windowStart):
		// Still inside the tracked window.
	case current.Sub(e.windowStart) == window:
		e.previous = e.current
		e.current = 0
		e.windowStart = current
	case current.After(e.windowStart):
		// More than one full window has passed, nothing overlaps anymore.
		e.previous = 0
		e.current = 0
		e.windowStart = current
	default:
		// Clock retrocession: keep the tracked window, never rewind.
	}
}
