package ProfileHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
)

func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	user, err := h.UserRepository.SelectUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "user_not_found",
			"message": "User not found.",
		})
		return
	}

	profile, err := h.ProfileRepository.SelectProfileByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "profile_not_found",
			"message": "User profile not found.",
		})
		return
	}

	c.JSON(http.StatusOK, types.UserProfileResponse{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Fullname:           profile.Fullname,
		LanguagePreference: profile.LanguagePreference,
		CreatedAt:          user.CreatedAt,
		LastLogin:          user.LastLogin,
	})
}
