package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanay/backend-chat-api/configs"
	"github.com/okanay/backend-chat-api/services/limiter"
	"github.com/okanay/backend-chat-api/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRegistry(t *testing.T, cfg configs.RateLimitConfig) *limiter.Registry {
	t.Helper()
	clock := limiter.NewManualClock(time.Unix(1_700_000_000, 0))
	metrics := limiter.NewMetrics(prometheus.NewRegistry())
	return limiter.NewRegistry(cfg, clock, metrics)
}

func gatedRouter(registry *limiter.Registry, routeClass limiter.RouteClass, before ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{}, before...)
	handlers = append(handlers, RateLimitMiddleware(registry, routeClass), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router.POST("/target", handlers...)
	return router
}

func doRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/target", nil)
	req.Header.Set("X-Real-IP", ip)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGateRejectsSixthLoginAttemptPerIP(t *testing.T) {
	registry := newTestRegistry(t, configs.DefaultRateLimitConfig())
	router := gatedRouter(registry, limiter.RouteLogin)

	for i := 0; i < 5; i++ {
		w := doRequest(router, "203.0.113.7")
		require.Equal(t, http.StatusOK, w.Code, "attempt %d should pass", i+1)
	}

	w := doRequest(router, "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 2, "rejection body carries detail and status_code only")
	assert.Equal(t, "Too many authentication attempts. Please try again later.", body["detail"])
	assert.Equal(t, float64(http.StatusTooManyRequests), body["status_code"])
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// A different address is unaffected
	other := doRequest(router, "198.51.100.1")
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestGateRouteClassesAreIndependent(t *testing.T) {
	cfg := configs.DefaultRateLimitConfig()
	cfg.AIChat = configs.RateLimitRule{Rate: 2, Window: 24 * time.Hour}
	registry := newTestRegistry(t, cfg)

	userID := uuid.New()
	withUser := func(c *gin.Context) {
		c.Set("user_id", userID)
	}

	aiRouter := gatedRouter(registry, limiter.RouteAIChat, withUser)
	dataRouter := gatedRouter(registry, limiter.RouteChatData, withUser)

	doRequest(aiRouter, "203.0.113.7")
	doRequest(aiRouter, "203.0.113.7")
	exhausted := doRequest(aiRouter, "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, exhausted.Code)

	// ai_chat being exhausted must not touch the chat_data policies
	w := doRequest(dataRouter, "203.0.113.7")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGateBurstRejectsBeforeSustained(t *testing.T) {
	cfg := configs.DefaultRateLimitConfig()
	cfg.Burst = configs.RateLimitRule{Rate: 1, Window: time.Minute}
	cfg.Sustained = configs.RateLimitRule{Rate: 5, Window: 24 * time.Hour}
	registry := newTestRegistry(t, cfg)

	userID := uuid.New()
	router := gatedRouter(registry, limiter.RouteChatData, func(c *gin.Context) {
		c.Set("user_id", userID)
	})

	require.Equal(t, http.StatusOK, doRequest(router, "203.0.113.7").Code)
	w := doRequest(router, "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// Burst is checked first, so it rejects before sustained is consulted
	// and sustained never pays for the rejected requests. One admitted
	// request means one sustained slot used, the remaining four survive
	// any number of burst rejections.
	for i := 0; i < 10; i++ {
		doRequest(router, "203.0.113.7")
	}

	sustained, err := registry.Get(limiter.PolicySustained)
	require.NoError(t, err)
	result := sustained.Check(limiter.UserIdentity(userID))
	require.True(t, result.Allowed)
	assert.Equal(t, 3, result.Remaining)
}

func TestGateLocalizesRejection(t *testing.T) {
	cfg := configs.DefaultRateLimitConfig()
	cfg.AIChat = configs.RateLimitRule{Rate: 1, Window: 24 * time.Hour}
	registry := newTestRegistry(t, cfg)

	userID := uuid.New()
	router := gatedRouter(registry, limiter.RouteAIChat, func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("language", types.LanguageArabic)
	})

	doRequest(router, "203.0.113.7")
	w := doRequest(router, "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "لقد وصلت إلى الحد الأقصى لمحادثات الذكاء الاصطناعي. يرجى المحاولة مرة أخرى لاحقًا.", body["detail"])
}

func TestGateAnonymousUserScopedPolicyFallsBackToIP(t *testing.T) {
	cfg := configs.DefaultRateLimitConfig()
	cfg.AIChat = configs.RateLimitRule{Rate: 1, Window: 24 * time.Hour}
	registry := newTestRegistry(t, cfg)

	router := gatedRouter(registry, limiter.RouteAIChat)

	require.Equal(t, http.StatusOK, doRequest(router, "203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "203.0.113.7").Code)
	// Another address keeps its own budget
	assert.Equal(t, http.StatusOK, doRequest(router, "198.51.100.1").Code)
}
