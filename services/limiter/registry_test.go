package limiter

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanay/backend-chat-api/configs"
)

func newTestRegistry() (*Registry, *ManualClock) {
	clock := NewManualClock(time.Unix(1_700_000_000, 0))
	metrics := NewMetrics(prometheus.NewRegistry())
	return NewRegistry(configs.DefaultRateLimitConfig(), clock, metrics), clock
}

func TestRegistry_EveryRouteClassHasPolicies(t *testing.T) {
	reg, _ := newTestRegistry()

	routeClasses := []RouteClass{
		RouteSignup, RouteLogin, RouteAIChat,
		RouteChatSummary, RouteProfileUpdate, RouteChatData,
	}
	for _, rc := range routeClasses {
		assert.NotEmpty(t, reg.PoliciesFor(rc), "route class %s", rc)
	}
}

func TestRegistry_ChatDataEvaluationOrder(t *testing.T) {
	reg, _ := newTestRegistry()

	limiters := reg.PoliciesFor(RouteChatData)
	require.Len(t, limiters, 2)
	assert.Equal(t, PolicyBurst, limiters[0].Policy().Name)
	assert.Equal(t, PolicySustained, limiters[1].Policy().Name)
}

func TestRegistry_GetUnknownPolicy(t *testing.T) {
	reg, _ := newTestRegistry()

	_, err := reg.Get("no_such_policy")
	assert.Error(t, err)

	lim, err := reg.Get(PolicyAuth)
	require.NoError(t, err)
	assert.Equal(t, ScopeIP, lim.Policy().Scope)
}

func TestRegistry_PolicyConfiguration(t *testing.T) {
	reg, _ := newTestRegistry()

	auth, err := reg.Get(PolicyAuth)
	require.NoError(t, err)
	assert.Equal(t, 5, auth.Policy().Rate)
	assert.Equal(t, time.Minute, auth.Policy().Window)

	aiChat, err := reg.Get(PolicyAIChat)
	require.NoError(t, err)
	assert.Equal(t, ScopeUser, aiChat.Policy().Scope)
	assert.Equal(t, 24*time.Hour, aiChat.Policy().Window)
}

// Per-route-class scoping: exhausting ai_chat leaves burst and sustained
// untouched, and the other way around.
func TestRegistry_PolicyScopingIsIndependent(t *testing.T) {
	reg, _ := newTestRegistry()
	identity := UserIdentity(mustUUID(t, "aaf0c9be-8f30-4b2e-b457-6f7cf1a2b3c4"))

	aiChat, err := reg.Get(PolicyAIChat)
	require.NoError(t, err)

	for i := 0; i < aiChat.Policy().Rate; i++ {
		require.True(t, aiChat.Check(identity).Allowed)
	}
	require.False(t, aiChat.Check(identity).Allowed)

	for _, lim := range reg.PoliciesFor(RouteChatData) {
		assert.True(t, lim.Check(identity).Allowed)
	}
}
