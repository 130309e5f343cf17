package ProfileHandler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/configs"
	"github.com/okanay/backend-chat-api/middlewares"
	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// UpdateProfile applies a partial update. Every provided field is
// validated first so a bad request changes nothing.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var request types.ProfileUpdateRequest

	// Validate request
	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	fields := gin.H{}

	if request.Fullname != nil && len(strings.TrimSpace(*request.Fullname)) < configs.FULLNAME_MIN_LENGTH {
		fields["fullname"] = "Full name must be at least 3 characters long."
	}

	var language *types.Language
	if request.LanguagePreference != nil {
		preference := types.Language(*request.LanguagePreference)
		if !preference.IsValid() {
			fields["language_preference"] = `Language must be either "en" or "ar".`
		} else {
			language = &preference
		}
	}

	if request.Email != nil {
		inUse, err := h.UserRepository.EmailInUse(*request.Email, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "database_error",
				"message": "An error occurred while updating the profile.",
			})
			return
		}
		if inUse {
			fields["email"] = "This email is already in use."
		}
	}

	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "validation_error",
			"message": "Some fields could not be updated.",
			"fields":  fields,
		})
		return
	}

	if request.Email != nil {
		if _, err := h.UserRepository.UpdateEmail(userID, *request.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "email_update_failed",
				"message": "An error occurred while updating the profile.",
			})
			return
		}
	}

	profile, err := h.ProfileRepository.UpdateProfile(userID, request.Fullname, language)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "profile_update_failed",
			"message": "An error occurred while updating the profile.",
		})
		return
	}

	// The language middleware caches the preference, drop the stale entry
	if language != nil {
		h.LanguageCache.Delete(middlewares.LanguageCacheKey(userID))
	}

	responseLanguage := profile.LanguagePreference
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": i18n.T(responseLanguage, i18n.MsgProfileUpdated),
		"profile": profile,
	})
}
