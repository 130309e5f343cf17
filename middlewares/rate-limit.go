package middlewares

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/services/limiter"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// RateLimitMiddleware checks every policy attached to the route class, in
// the registry's order, and fails fast on the first rejection. A rejected
// request never consumes capacity on the policy that rejected it.
func RateLimitMiddleware(registry *limiter.Registry, routeClass limiter.RouteClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, lim := range registry.PoliciesFor(routeClass) {
			identity := identityFor(c, lim.Policy().Scope)
			result := lim.Check(identity)

			registry.Metrics().ObserveCheck(result.Policy, result.Allowed)
			if result.Allowed {
				continue
			}

			registry.Metrics().ObserveRejection(result.Policy, routeClass)
			log.Printf("[ratelimit] rejected identity=%s route_class=%s policy=%s", identity, routeClass, result.Policy)

			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			language := requestLanguage(c)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail":      i18n.ThrottleMessage(language, throttleCategoryFor(routeClass)),
				"status_code": http.StatusTooManyRequests,
			})
			return
		}

		c.Next()
	}
}

// identityFor keys user-scoped policies by account and IP-scoped policies
// by client address. Unauthenticated traffic on a user-scoped policy falls
// back to the IP key, the two key spaces never collide.
func identityFor(c *gin.Context, scope limiter.Scope) string {
	if scope == limiter.ScopeUser {
		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(uuid.UUID); ok {
				return limiter.UserIdentity(id)
			}
		}
	}
	return limiter.IPIdentity(utils.GetTrueClientIP(c))
}

func requestLanguage(c *gin.Context) types.Language {
	if language, exists := c.Get("language"); exists {
		if lang, ok := language.(types.Language); ok {
			return lang
		}
	}
	return i18n.DefaultLanguage
}

func throttleCategoryFor(routeClass limiter.RouteClass) i18n.ThrottleCategory {
	switch routeClass {
	case limiter.RouteAIChat:
		return i18n.ThrottleCategoryAI
	case limiter.RouteSignup, limiter.RouteLogin:
		return i18n.ThrottleCategoryAuth
	case limiter.RouteChatSummary:
		return i18n.ThrottleCategorySummary
	default:
		return i18n.ThrottleCategoryGeneric
	}
}
