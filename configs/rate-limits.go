package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitRule is a single rate+window pair.
type RateLimitRule struct {
	Rate   int
	Window time.Duration
}

// RateLimitConfig holds the rule for every named throttle policy.
type RateLimitConfig struct {
	Burst         RateLimitRule
	Sustained     RateLimitRule
	Auth          RateLimitRule
	AIChat        RateLimitRule
	ProfileUpdate RateLimitRule
	ChatSummary   RateLimitRule
}

// DefaultRateLimitConfig returns the built-in policy table.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Burst:         RateLimitRule{Rate: 60, Window: time.Minute},
		Sustained:     RateLimitRule{Rate: 1000, Window: 24 * time.Hour},
		Auth:          RateLimitRule{Rate: 5, Window: time.Minute},
		AIChat:        RateLimitRule{Rate: 20, Window: 24 * time.Hour},
		ProfileUpdate: RateLimitRule{Rate: 30, Window: time.Hour},
		ChatSummary:   RateLimitRule{Rate: 5, Window: 24 * time.Hour},
	}
}

// LoadRateLimitConfig starts from the defaults and applies any
// CHAT_RATELIMIT_<POLICY> environment overrides, written as "rate/window"
// (for example CHAT_RATELIMIT_AUTH=10/60s).
func LoadRateLimitConfig() RateLimitConfig {
	cfg := DefaultRateLimitConfig()

	overrides := map[string]*RateLimitRule{
		"CHAT_RATELIMIT_BURST":          &cfg.Burst,
		"CHAT_RATELIMIT_SUSTAINED":      &cfg.Sustained,
		"CHAT_RATELIMIT_AUTH":           &cfg.Auth,
		"CHAT_RATELIMIT_AI_CHAT":        &cfg.AIChat,
		"CHAT_RATELIMIT_PROFILE_UPDATE": &cfg.ProfileUpdate,
		"CHAT_RATELIMIT_CHAT_SUMMARY":   &cfg.ChatSummary,
	}

	for env, rule := range overrides {
		value := os.Getenv(env)
		if value == "" {
			continue
		}

		parsed, err := parseRateLimitRule(value)
		if err != nil {
			// Bad overrides are ignored, the default stays in effect
			fmt.Printf("[WARN] %s: %v\n", env, err)
			continue
		}
		*rule = parsed
	}

	return cfg
}

func parseRateLimitRule(value string) (RateLimitRule, error) {
	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 {
		return RateLimitRule{}, fmt.Errorf("expected rate/window, got %q", value)
	}

	rate, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || rate <= 0 {
		return RateLimitRule{}, fmt.Errorf("invalid rate %q", parts[0])
	}

	window, err := time.ParseDuration(strings.TrimSpace(parts[1]))
	if err != nil || window <= 0 {
		return RateLimitRule{}, fmt.Errorf("invalid window %q", parts[1])
	}

	return RateLimitRule{Rate: rate, Window: window}, nil
}
