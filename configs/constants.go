package configs

import (
	"time"
)

const (
	// Project Rules
	PROJECT_NAME = "Chat API"

	// Session Rules
	REFRESH_TOKEN_LENGTH   = 32
	REFRESH_TOKEN_DURATION = 30 * 24 * time.Hour
	ACCESS_TOKEN_DURATION  = 15 * time.Minute
	JWT_ISSUER             = "backend-chat-api"

	// Profile Rules
	FULLNAME_MIN_LENGTH = 3
	PASSWORD_MIN_LENGTH = 6

	// Language Cache Rules
	LANGUAGE_CACHE_EXPIRATION = 5 * time.Minute

	// AI Chat Rules
	CONVERSATION_TITLE_MAX_LENGTH = 50
	AI_HISTORY_MESSAGE_COUNT      = 5
	SUMMARY_DEFAULT_MAX_MESSAGES  = 50
)
