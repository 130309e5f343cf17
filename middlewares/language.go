package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ProfileRepository "github.com/okanay/backend-chat-api/repositories/profile"
	cache "github.com/okanay/backend-chat-api/services"
	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
)

// LanguageMiddleware resolves the request language and stores it on the
// context as "language". The profile preference wins for authenticated
// requests, otherwise the Accept-Language header decides. Attach it after
// AuthMiddleware on protected groups, on its own for public routes.
func LanguageMiddleware(pr *ProfileRepository.Repository, languageCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profileLanguage types.Language

		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(uuid.UUID); ok {
				profileLanguage = lookupProfileLanguage(pr, languageCache, id)
			}
		}

		language := i18n.Resolve(profileLanguage, c.GetHeader("Accept-Language"))
		c.Set("language", language)

		c.Next()
	}
}

func lookupProfileLanguage(pr *ProfileRepository.Repository, languageCache *cache.Cache, userID uuid.UUID) types.Language {
	key := LanguageCacheKey(userID)

	if cached, found := languageCache.Get(key); found {
		return types.Language(cached)
	}

	language, err := pr.SelectLanguagePreference(userID)
	if err != nil {
		return ""
	}

	languageCache.Set(key, []byte(language))
	return language
}

// LanguageCacheKey is shared with the profile handler, which drops the
// entry when the preference changes.
func LanguageCacheKey(userID uuid.UUID) string {
	return "lang:" + userID.String()
}
