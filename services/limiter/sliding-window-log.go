package limiter

import (
	"sync"
	"time"
)

// slidingWindowLog stores every admitted timestamp per identity and admits
// while fewer than Rate timestamps remain inside the window. Exact semantics,
// O(rate) memory per identity, meant for low-volume policies (auth, burst).
type slidingWindowLog struct {
	policy Policy
	clock  Clock
	shards [shardCount]logShard
}

type logShard struct {
	mu      sync.Mutex
	entries map[string]*logEntry
}

type logEntry struct {
	events []time.Time
}

func newSlidingWindowLog(policy Policy, clock Clock) *slidingWindowLog {
	l := &slidingWindowLog{policy: policy, clock: clock}
	for i := range l.shards {
		l.shards[i].entries = make(map[string]*logEntry)
	}
	return l
}

func (l *slidingWindowLog) Policy() Policy {
	return l.policy
}

func (l *slidingWindowLog) Check(identity string) Result {
	shard := &l.shards[shardIndex(identity)]
	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := l.clock.Now()

	entry, exists := shard.entries[identity]
	if !exists {
		entry = &logEntry{events: make([]time.Time, 0, l.policy.Rate)}
		shard.entries[identity] = entry
	}

	entry.prune(now, l.policy.Window)

	if len(entry.events) < l.policy.Rate {
		entry.events = append(entry.events, now)
		return Result{
			Allowed:   true,
			Remaining: l.policy.Rate - len(entry.events),
			Policy:    l.policy.Name,
		}
	}

	// Capacity frees up when the oldest admitted event leaves the window.
	retryAfter := entry.events[0].Add(l.policy.Window).Sub(now)
	if retryAfter <= 0 || retryAfter > l.policy.Window {
		// Negative elapsed time (clock retrocession) must not unlock
		// unbounded admission, clamp to the full window.
		retryAfter = l.policy.Window
	}

	return Result{
		Allowed:    false,
		Remaining:  0,
		RetryAfter: retryAfter,
		Policy:     l.policy.Name,
	}
}

func (l *slidingWindowLog) Sweep() int {
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

		// Re-check one entry per lock hold so request evaluation is never
		// stalled behind a long sweep.
		for _, identity := range candidates {
			shard.mu.Lock()
			if entry, exists := shard.entries[identity]; exists {
				entry.prune(now, l.policy.Window)
				if len(entry.events) == 0 {
					delete(shard.entries, identity)
					removed++
				}
			}
			shard.mu.Unlock()
		}
	}

	return removed
}

func (e *logEntry) prune(now time.Time, window time.Duration) {
	cutoff := now.Add(-window)

	valid := 0
	for valid < len(e.events) && !e.events[valid].After(cutoff) {
		valid++
	}
	if valid > 0 {
		e.events = e.events[valid:]
	}
}
