package limiter

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/okanay/backend-chat-api/configs"
)

// Policy names, fixed at process start.
const (
	PolicyBurst         = "burst"
	PolicySustained     = "sustained"
	PolicyAuth          = "auth"
	PolicyAIChat        = "ai_chat"
	PolicyProfileUpdate = "profile_update"
	PolicyChatSummary   = "chat_summary"
)

// routePolicies maps every route class to its applicable policies in
// evaluation order. The first policy that rejects is the one reported,
// so the tightest check goes first.
var routePolicies = map[RouteClass][]string{
	RouteSignup:        {PolicyAuth},
	RouteLogin:         {PolicyAuth},
	RouteAIChat:        {PolicyAIChat},
	RouteChatSummary:   {PolicyChatSummary},
	RouteProfileUpdate: {PolicyProfileUpdate},
	RouteChatData:      {PolicyBurst, PolicySustained},
}

// Registry owns one live limiter per policy name. Counters are in-process:
// in a multi-instance deployment each instance enforces its own share, a
// shared counter store would be needed for a global guarantee.
type Registry struct {
	limiters map[string]Limiter
	metrics  *Metrics
	sweeper  *cron.Cron
}

// NewRegistry builds every policy from the static configuration. Low-volume
// short-window policies get exact log limiters, the rest use the counter
// approximation.
func NewRegistry(cfg configs.RateLimitConfig, clock Clock, metrics *Metrics) *Registry {
	if clock == nil {
		clock = SystemClock{}
	}

	policies := []Policy{
		{Name: PolicyBurst, Scope: ScopeUser, Rate: cfg.Burst.Rate, Window: cfg.Burst.Window, Algorithm: AlgorithmLog},
		{Name: PolicySustained, Scope: ScopeUser, Rate: cfg.Sustained.Rate, Window: cfg.Sustained.Window, Algorithm: AlgorithmCounter},
		{Name: PolicyAuth, Scope: ScopeIP, Rate: cfg.Auth.Rate, Window: cfg.Auth.Window, Algorithm: AlgorithmLog},
		{Name: PolicyAIChat, Scope: ScopeUser, Rate: cfg.AIChat.Rate, Window: cfg.AIChat.Window, Algorithm: AlgorithmCounter},
		{Name: PolicyProfileUpdate, Scope: ScopeUser, Rate: cfg.ProfileUpdate.Rate, Window: cfg.ProfileUpdate.Window, Algorithm: AlgorithmCounter},
		{Name: PolicyChatSummary, Scope: ScopeUser, Rate: cfg.ChatSummary.Rate, Window: cfg.ChatSummary.Window, Algorithm: AlgorithmCounter},
	}

	limiters := make(map[string]Limiter, len(policies))
	for _, policy := range policies {
		switch policy.Algorithm {
		case AlgorithmLog:
			limiters[policy.Name] = newSlidingWindowLog(policy, clock)
		default:
			limiters[policy.Name] = newSlidingWindowCounter(policy, clock)
		}
	}

	return &Registry{limiters: limiters, metrics: metrics}
}

// Get returns the live limiter for a policy name.
func (r *Registry) Get(name string) (Limiter, error) {
	lim, exists := r.limiters[name]
	if !exists {
		return nil, fmt.Errorf("unknown throttle policy %q", name)
	}
	return lim, nil
}

// PoliciesFor returns the limiters applicable to a route class, in
// evaluation order. Every route class has a non-empty list.
func (r *Registry) PoliciesFor(routeClass RouteClass) []Limiter {
	names := routePolicies[routeClass]
	limiters := make([]Limiter, 0, len(names))
	for _, name := range names {
		if lim, exists := r.limiters[name]; exists {
			limiters = append(limiters, lim)
		}
	}
	return limiters
}

// Metrics returns the observability sink, nil when none was attached.
func (r *Registry) Metrics() *Metrics {
	return r.metrics
}

// StartSweeper runs a periodic cleanup of idle identity counters. Not
// correctness-critical, it only bounds memory for identities that stop
// sending traffic.
func (r *Registry) StartSweeper(schedule string) error {
	if r.sweeper != nil {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		removed := 0
		for _, lim := range r.limiters {
			removed += lim.Sweep()
		}
		r.metrics.ObserveSweep(removed)
		if removed > 0 {
			log.Printf("[ratelimit] sweeper removed %d idle entries", removed)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	r.sweeper = c
	return nil
}

// Stop halts the background sweeper. Safe to call when it never started.
func (r *Registry) Stop() {
	if r.sweeper != nil {
		r.sweeper.Stop()
		r.sweeper = nil
	}
}
