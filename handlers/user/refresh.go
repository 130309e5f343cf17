package UserHandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (h *Handler) Refresh(c *gin.Context) {
	var request types.RefreshRequest

	// Validate request
	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	// Check the refresh token in the database
	dbToken, err := h.TokenRepository.SelectRefreshTokenByToken(request.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "invalid_refresh_token",
			"message": "Session is invalid.",
		})
		return
	}

	if dbToken.ExpiresAt.Before(time.Now()) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "expired_refresh_token",
			"message": "Session has expired.",
		})
		return
	}

	// Retrieve the user from the database
	user, err := h.UserRepository.SelectUserByID(dbToken.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "user_not_found",
			"message": "User not found.",
		})
		return
	}

	language := i18n.DefaultLanguage
	if preference, err := h.ProfileRepository.SelectLanguagePreference(user.ID); err == nil {
		language = preference
	}

	// Generate a new access token
	accessToken, err := utils.GenerateAccessToken(types.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Language: language,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "token_generation_failed",
			"message": "An error occurred while renewing the session.",
		})
		return
	}

	// Update the last used time of the refresh token
	err = h.TokenRepository.UpdateLastUsed(request.Refresh)
	if err != nil {
		// Logging can be done but it won't block the process
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"access":  accessToken,
	})
}
