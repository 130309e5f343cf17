package ChatHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/services/i18n"
	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (h *Handler) ListSummaries(c *gin.Context) {
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

	summaries, err := h.Summaries.SelectSummariesByUserID(userID, language)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"summaries": summaries,
	})
}

func (h *Handler) CreateSummary(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var request types.SummaryCreateRequest
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

	summary, err := h.Summaries.CreateSummary(userID, request.Content, language)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": i18n.T(language, i18n.MsgSummaryCreated),
		"summary": summary,
	})
}

func (h *Handler) GetSummary(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	summaryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFound(c, "summary_not_found", "Summary not found.")
		return
	}

	summary, err := h.Summaries.SelectSummaryByID(summaryID, userID)
	if err != nil {
		notFound(c, "summary_not_found", "Summary not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": summary,
	})
}
