package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (h *Handler) Logout(c *gin.Context) {
	var request types.RefreshRequest

	// Validate request
	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	err = h.TokenRepository.RevokeRefreshToken(request.Refresh, "logout")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "logout_failed",
			"message": "An error occurred while closing the session.",
		})
		return
	}

	language := requestLanguage(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": i18n.T(language, i18n.MsgLogoutSuccessful),
	})
}

// requestLanguage reads the language the middleware resolved, defaulting
// to English when the middleware did not run.
func requestLanguage(c *gin.Context) types.Language {
	if language, exists := c.Get("language"); exists {
		if lang, ok := language.(types.Language); ok {
			return lang
		}
	}
	return i18n.DefaultLanguage
}
