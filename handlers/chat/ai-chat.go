package ChatHandler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/configs"
	AIService "github.com/okanay/backend-chat-api/services/ai"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// AIChat runs one chat turn: store the user message, ask the model for a
// reply and store that too. An unreachable model never fails the turn, the
// reply degrades to a simulated one.
func (h *Handler) AIChat(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var request types.AIChatRequest
	if err := utils.ValidateRequest(c, &request); err != nil {
		return
	}

	modelID := request.Model
	if modelID == "" {
		modelID = AIService.DefaultModelID
	}
	if _, exists := AIService.AvailableModels[modelID]; !exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_model",
			"message": "Invalid model. Available models: " + AIService.ModelIDList(),
		})
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

	// Get or create the conversation
	var conversation types.Conversation
	var err error
	if request.ConversationID != nil {
		conversation, err = h.Conversations.SelectConversationByID(*request.ConversationID, userID)
		if err != nil {
			notFound(c, "conversation_not_found", "Conversation not found.")
			return
		}
	} else {
		conversation, err = h.Conversations.CreateConversation(userID, conversationTitle(request.Message), language)
		if err != nil {
			internalError(c)
			return
		}
	}

	// History is read before the new message is stored so the prompt does
	// not carry the message twice
	history, err := h.Messages.SelectMessagesByConversation(userID, conversation.ID)
	if err != nil {
		internalError(c)
		return
	}

	userMessage, err := h.Messages.CreateMessage(userID, &conversation.ID, request.Message, language, true)
	if err != nil {
		internalError(c)
		return
	}

	response := h.generateReply(c, modelID, history, request.Message, language)

	aiMessage, err := h.Messages.CreateMessage(userID, &conversation.ID, response, language, false)
	if err != nil {
		internalError(c)
		return
	}

	_ = h.Conversations.TouchConversation(conversation.ID)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"conversation_id": conversation.ID,
		"model":           modelID,
		"user_message": gin.H{
			"id":         userMessage.ID,
			"content":    userMessage.Content,
			"created_at": userMessage.CreatedAt,
		},
		"ai_response": gin.H{
			"id":         aiMessage.ID,
			"content":    aiMessage.Content,
			"created_at": aiMessage.CreatedAt,
		},
	})
}

func (h *Handler) generateReply(c *gin.Context, modelID string, history []types.ChatMessage, message string, language types.Language) string {
	// The models mangle common Arabic greetings, answer those locally
	if AIService.IsArabicGreeting(message, language) {
		return AIService.ArabicGreetingResponse(message)
	}

	response, err := h.AI.Generate(c.Request.Context(), modelID, history, message, language)
	if err != nil {
		log.Printf("[chat] model %s unavailable, serving simulated reply: %v", modelID, err)
		return AIService.SimulatedResponse(message, language)
	}

	return response
}

// conversationTitle derives a title from the opening message.
func conversationTitle(message string) string {
	runes := []rune(message)
	if len(runes) > configs.CONVERSATION_TITLE_MAX_LENGTH {
		return string(runes[:configs.CONVERSATION_TITLE_MAX_LENGTH]) + "..."
	}
	return message
}
