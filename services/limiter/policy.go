package limiter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scope decides which identity a policy counts against.
type Scope string

const (
	ScopeUser Scope = "user"
	ScopeIP   Scope = "ip"
)

// Algorithm selects the window bookkeeping used by a policy.
type Algorithm string

const (
	// AlgorithmLog keeps every admitted timestamp. Exact, used for
	// low-volume short-window policies.
	AlgorithmLog Algorithm = "sliding_window_log"
	// AlgorithmCounter keeps the current and previous window counts and
	// estimates the load on the sliding horizon. Approximate with a small
	// bounded overshoot, used for high-volume policies.
	AlgorithmCounter Algorithm = "sliding_window_counter"
)

// Policy is a single named rate-limit rule. Immutable after construction.
type Policy struct {
	Name      string
	Scope     Scope
	Rate      int
	Window    time.Duration
	Algorithm Algorithm
}

// Result is the outcome of one check-and-consume call.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
	Policy     string
}

// Limiter evaluates a single policy for one identity. Check must be atomic:
// the count read and the conditional increment happen under the same lock,
// and a rejected attempt never increments the counter.
type Limiter interface {
	Policy() Policy
	Check(identity string) Result
	// Sweep drops entries whose window fully elapsed with no activity and
	// returns the number removed.
	Sweep() int
}

// RouteClass groups endpoints that share the same applicable policies.
type RouteClass string

const (
	RouteSignup        RouteClass = "signup"
	RouteLogin         RouteClass = "login"
	RouteAIChat        RouteClass = "ai_chat"
	RouteChatSummary   RouteClass = "chat_summary"
	RouteProfileUpdate RouteClass = "profile_update"
	// RouteChatData covers message/conversation/summary list-create and
	// detail endpoints.
	RouteChatData RouteClass = "chat_data"
)

// Identity keys live in disjoint key spaces so user ids can never collide
// with IP strings.

func UserIdentity(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

func IPIdentity(ip string) string {
	return fmt.Sprintf("ip:%s", ip)
}
