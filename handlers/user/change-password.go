package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (h *Handler) ChangePassword(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var request types.ChangePasswordRequest

	// Validate request
	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	if request.NewPassword != request.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "password_mismatch",
			"message": "New password fields didn't match.",
		})
		return
	}

	user, err := h.UserRepository.SelectUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "user_not_found",
			"message": "User not found.",
		})
		return
	}

	if !utils.CheckPassword(request.CurrentPassword, user.HashedPassword) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_current_password",
			"message": "Current password is incorrect.",
		})
		return
	}

	err = h.UserRepository.UpdatePassword(userID, request.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "password_update_failed",
			"message": "An error occurred while updating the password.",
		})
		return
	}

	// Other sessions must sign in again with the new password
	err = h.TokenRepository.RevokeAllForUser(userID, "password_change")
	if err != nil {
		// Not fatal for the password change itself
	}

	language := requestLanguage(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": i18n.T(language, i18n.MsgPasswordChanged),
	})
}
