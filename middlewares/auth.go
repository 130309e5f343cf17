package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-chat-api/utils"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract the bearer token
		header := c.GetHeader("Authorization")
		if header == "" {
			handleUnauthorized(c, "Authentication credentials were not provided.")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			handleUnauthorized(c, "Invalid authorization header.")
			return
		}

		// 2. Validate the access token
		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			if err == utils.ErrExpiredToken {
				handleUnauthorized(c, "Token has expired.")
				return
			}
			handleUnauthorized(c, "Invalid token.")
			return
		}

		// 3. Token is valid, add user information to the context
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Set("token_language", claims.Language)

		// 4. Continue processing
		c.Next()
	}
}

func handleUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "unauthorized",
		"message": message,
	})
	c.Abort()
}
