package ChatHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (h *Handler) ListConversations(c *gin.Context) {
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

	conversations, err := h.Conversations.SelectConversationsByUserID(userID, language)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"conversations": conversations,
	})
}

func (h *Handler) CreateConversation(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var request types.ConversationCreateRequest
	if err := utils.ValidateRequest(c, &request); err != nil {
		return
	}

	language := requestLanguage(c)
	if request.Language != "" {
		requested := types.Language(request.Language)
		if !requested.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid_language",
				"message": `Language must be either "en" or "ar".`,
			})
			return
		}
		language = requested
	}

	conversation, err := h.Conversations.CreateConversation(userID, request.Title, language)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      i18n.T(language, i18n.MsgConversationCreated),
		"conversation": conversation,
	})
}

func (h *Handler) GetConversation(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFound(c, "conversation_not_found", "Conversation not found.")
		return
	}

	conversation, err := h.Conversations.SelectConversationByID(conversationID, userID)
	if err != nil {
		notFound(c, "conversation_not_found", "Conversation not found.")
		return
	}

	messages, err := h.Messages.SelectMessagesByConversation(userID, conversationID)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"conversation": conversation,
		"messages":     messages,
	})
}

// DeleteConversation removes the conversation and every message in it,
// reporting how many messages were deleted.
func (h *Handler) DeleteConversation(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFound(c, "conversation_not_found", "Conversation not found.")
		return
	}

	deletedMessages, err := h.Conversations.DeleteConversation(conversationID, userID)
	if err != nil {
		notFound(c, "conversation_not_found", "Conversation not found.")
		return
	}

	language := requestLanguage(c)
	c.JSON(http.StatusOK, gin.H{
		"success":                true,
		"message":                i18n.T(language, i18n.MsgConversationDeleted),
		"deleted_messages_count": deletedMessages,
	})
}
