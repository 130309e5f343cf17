package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (h *Handler) Login(c *gin.Context) {
	var request types.UserLoginRequest

	// Validate request
	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	// Retrieve user information from the database
	user, err := h.UserRepository.SelectUserByEmail(request.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "invalid_credentials",
			"message": "Invalid email or password.",
		})
		return
	}

	// Validate password
	if !utils.CheckPassword(request.Password, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "invalid_credentials",
			"message": "Invalid email or password.",
		})
		return
	}

	// Resolve the profile language for the claims and response
	language := i18n.DefaultLanguage
	if profile, err := h.ProfileRepository.SelectProfileByUserID(user.ID); err == nil {
		language = profile.LanguagePreference
	}

	accessToken, refreshToken, err := h.createSession(c, user, language)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "token_generation_failed",
			"message": "An error occurred while creating the session.",
		})
		return
	}

	// Update user's last login time
	err = h.UserRepository.UpdateLastLogin(user.ID)
	if err != nil {
		// This error should not prevent session creation
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  i18n.T(language, i18n.MsgLoginSuccessful),
		"access":   accessToken,
		"refresh":  refreshToken,
		"language": language,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
