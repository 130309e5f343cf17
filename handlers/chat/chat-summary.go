package ChatHandler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/configs"
	AIService "github.com/okanay/backend-chat-api/services/ai"
	"github.com/okanay/backend-chat-api/types"
)

// ChatSummary builds a summary of the user's recent chat history. When the
// summarization model is unreachable a statistical summary is produced
// instead, the endpoint never fails on upstream problems.
func (h *Handler) ChatSummary(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var request types.ChatSummaryRequest
	// The body is optional, both fields have defaults
	_ = c.ShouldBindJSON(&request)

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

	maxMessages := request.MaxMessages
	if maxMessages <= 0 {
		maxMessages = configs.SUMMARY_DEFAULT_MAX_MESSAGES
	}

	messages, err := h.Messages.SelectRecentMessages(userID, maxMessages)
	if err != nil {
		internalError(c)
		return
	}

	if len(messages) == 0 {
		summary := "No chat history available to summarize."
		if language == types.LanguageArabic {
			summary = "لا يوجد سجل محادثات متاح للتلخيص."
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"summary": summary,
		})
		return
	}

	summaryText, err := h.AI.Summarize(c.Request.Context(), messages, language)
	if err != nil {
		log.Printf("[chat] summarization unavailable, serving basic summary: %v", err)
		summaryText = AIService.BasicSummary(messages, language)
	}

	summary, err := h.Summaries.CreateSummary(userID, summaryText, language)
	if err != nil {
		internalError(c)
		return
	}

	stats := AIService.SummaryStatsFor(messages)
	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"summary":            summaryText,
		"summary_id":         summary.ID,
		"conversation_count": stats.ConversationCount,
		"message_count": gin.H{
			"user": stats.UserMessages,
			"ai":   stats.AIMessages,
		},
	})
}
