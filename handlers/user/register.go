package UserHandler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/okanay/backend-chat-api/configs"
	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (h *Handler) Register(c *gin.Context) {
	var request types.UserRegisterRequest

	// Validate request
	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	if request.Password != request.Password2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "password_mismatch",
			"message": "Password fields didn't match.",
		})
		return
	}

	language := types.Language(request.LanguagePreference)
	if request.LanguagePreference == "" {
		language = i18n.DefaultLanguage
	}
	if !language.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_language",
			"message": `Language must be either "en" or "ar".`,
		})
		return
	}

	// Reject duplicate emails before touching the database writer
	if _, err := h.UserRepository.SelectUserByEmail(request.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "email_in_use",
			"message": "This email is already in use.",
		})
		return
	} else if err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "database_error",
			"message": "An error occurred while creating the account.",
		})
		return
	}

	user, profile, err := h.UserRepository.CreateUser(types.UserCreateRequest{
		Email:              request.Email,
		Password:           request.Password,
		Fullname:           request.Fullname,
		LanguagePreference: language,
	})
	if err != nil {
		// A concurrent registration can still trip the unique constraint
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "email_in_use",
				"message": "This email is already in use.",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "user_creation_failed",
			"message": "An error occurred while creating the account.",
		})
		return
	}

	accessToken, refreshToken, err := h.createSession(c, user, profile.LanguagePreference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "token_generation_failed",
			"message": "An error occurred while creating the session.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": i18n.T(language, i18n.MsgUserRegistered),
		"access":  accessToken,
		"refresh": refreshToken,
		"user": types.UserProfileResponse{
			ID:                 user.ID,
			Username:           user.Username,
			Email:              user.Email,
			Fullname:           profile.Fullname,
			LanguagePreference: profile.LanguagePreference,
			CreatedAt:          user.CreatedAt,
			LastLogin:          user.LastLogin,
		},
	})
}

// createSession issues the access token and persists a fresh refresh token.
func (h *Handler) createSession(c *gin.Context, user types.User, language types.Language) (string, string, error) {
	accessToken, err := utils.GenerateAccessToken(types.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Language: language,
	})
	if err != nil {
		return "", "", err
	}

	refreshToken := utils.GenerateRefreshToken()
	_, err = h.TokenRepository.CreateRefreshToken(types.TokenCreateRequest{
		UserID:    user.ID,
		UserEmail: user.Email,
		Token:     refreshToken,
		IPAddress: utils.GetTrueClientIP(c),
		UserAgent: c.Request.UserAgent(),
		ExpiresAt: time.Now().Add(configs.REFRESH_TOKEN_DURATION),
	})
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
