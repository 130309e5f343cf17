package ChatHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// ListMessages returns the user's messages, optionally narrowed by the
// language and conversation_id query parameters.
func (h *Handler) ListMessages(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	language := types.Language(c.Query("language"))
	if language != "" && !language.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_language",
			"message": `Language must be either "en" or "ar".`,
		})
		return
	}

	var conversationID *uuid.UUID
	if raw := c.Query("conversation_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid_conversation_id",
				"message": "conversation_id must be a valid UUID.",
			})
			return
		}
		conversationID = &id
	}

	messages, err := h.Messages.SelectMessagesByUserID(userID, language, conversationID)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"messages": messages,
	})
}

// CreateMessage stores a message directly, without going through the AI
// proxy. is_user_message defaults to true.
func (h *Handler) CreateMessage(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var request types.MessageCreateRequest
	if err := utils.ValidateRequest(c, &request); err != nil {
		return
	}

	if request.ConversationID != nil {
		if _, err := h.Conversations.SelectConversationByID(*request.ConversationID, userID); err != nil {
			notFound(c, "conversation_not_found", "Conversation not found.")
			return
		}
	}

	isUserMessage := true
	if request.IsUserMessage != nil {
		isUserMessage = *request.IsUserMessage
	}

	language := requestLanguage(c)
	message, err := h.Messages.CreateMessage(userID, request.ConversationID, request.Content, language, isUserMessage)
	if err != nil {
		internalError(c)
		return
	}

	if request.ConversationID != nil {
		_ = h.Conversations.TouchConversation(*request.ConversationID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": i18n.T(language, i18n.MsgMessageCreated),
		"data":    message,
	})
}

func requestLanguage(c *gin.Context) types.Language {
	if language, exists := c.Get("language"); exists {
		if lang, ok := language.(types.Language); ok {
			return lang
		}
	}
	return i18n.DefaultLanguage
}

func notFound(c *gin.Context, code, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   code,
		"message": message,
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "internal_error",
		"message": i18n.T(requestLanguage(c), i18n.MsgInternalError),
	})
}
