package AIService

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanay/backend-chat-api/types"
)

func testMessage(content string, isUser bool, minutesAgo int) types.ChatMessage {
	convID := uuid.New()
	return types.ChatMessage{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		ConversationID: &convID,
		Content:        content,
		Language:       types.LanguageEnglish,
		IsUserMessage:  isUser,
		CreatedAt:      time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func TestBuildPromptPlainModels(t *testing.T) {
	history := []types.ChatMessage{testMessage("earlier", true, 2)}

	prompt := buildPrompt("lamini-t5", history, "what is Go?", types.LanguageEnglish)
	assert.Equal(t, "what is Go?", prompt, "non dialogue models should receive the bare message")
}

func TestBuildPromptDeepseekCarriesHistory(t *testing.T) {
	history := []types.ChatMessage{
		testMessage("hello", true, 10),
		testMessage("Hello! How can I help?", false, 9),
	}

	prompt := buildPrompt("deepseek", history, "tell me about Go", types.LanguageEnglish)

	assert.Contains(t, prompt, "User: hello\n")
	assert.Contains(t, prompt, "Bot: Hello! How can I help?\n")
	assert.True(t, strings.HasSuffix(prompt, "User: tell me about Go\nBot:"))
}

func TestBuildPromptDeepseekTruncatesHistory(t *testing.T) {
	var history []types.ChatMessage
	for i := 0; i < 12; i++ {
		history = append(history, testMessage("message", i%2 == 0, 12-i))
	}

	prompt := buildPrompt("deepseek", history, "latest", types.LanguageEnglish)

	// 5 history lines plus the new turn and the trailing bot marker.
	lines := strings.Split(strings.TrimSpace(prompt), "\n")
	assert.Len(t, lines, 7)
}

func TestBuildPromptDeepseekArabicPrefixes(t *testing.T) {
	history := []types.ChatMessage{testMessage("مرحبا", true, 1)}

	prompt := buildPrompt("deepseek", history, "كيف حالك؟", types.LanguageArabic)

	assert.Contains(t, prompt, "المستخدم: مرحبا")
	assert.True(t, strings.HasSuffix(prompt, "الروبوت:"))
	assert.NotContains(t, prompt, "User:")
}

func TestExtractResponseDeepseekSplitsOnLastUserMarker(t *testing.T) {
	generated := "User: hi\nBot: hello there\nUser: what is Go?\nBot: Go is a programming language."

	response := ExtractResponse("deepseek", generated, "what is Go?", types.LanguageEnglish)
	assert.Equal(t, "Go is a programming language.", response)
}

func TestExtractResponseDeepseekEchoedUserTurnFallsBack(t *testing.T) {
	generated := "User: what is Go?\nUser: what is Go?"

	response := ExtractResponse("deepseek", generated, "what is Go?", types.LanguageEnglish)
	assert.Equal(t, cannedText(types.LanguageEnglish, cannedFallback), response)
}

func TestExtractResponseDeepseekWithoutMarkerTakesLastBotLine(t *testing.T) {
	generated := "Bot: first answer\nUser: something else\nBot: second answer"

	response := ExtractResponse("deepseek", generated, "never echoed", types.LanguageEnglish)
	assert.Equal(t, "second answer", response)
}

func TestExtractResponseDeepseekOnlyUserLines(t *testing.T) {
	generated := "User: a\nUser: b"

	response := ExtractResponse("deepseek", generated, "never echoed", types.LanguageEnglish)
	assert.Equal(t, cannedText(types.LanguageEnglish, cannedUnderstanding), response)
}

func TestExtractResponseEmptyGenerationFallsBack(t *testing.T) {
	response := ExtractResponse("lamini-t5", "   ", "hello", types.LanguageArabic)
	assert.Equal(t, cannedText(types.LanguageArabic, cannedFallback), response)
}

func TestExtractResponseTrimsPlainModels(t *testing.T) {
	response := ExtractResponse("blenderbot-400M", "  a decent answer \n", "hello", types.LanguageEnglish)
	assert.Equal(t, "a decent answer", response)
}

func TestAvailableModelsHaveParams(t *testing.T) {
	require.Contains(t, AvailableModels, DefaultModelID)

	for id, model := range AvailableModels {
		assert.NotEmpty(t, model.Path, "model %s needs an inference path", id)
		assert.Equal(t, 100, model.Params.MaxLength)
	}
}
