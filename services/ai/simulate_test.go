package AIService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanay/backend-chat-api/types"
)

func TestSimulatedCategory(t *testing.T) {
	tests := []struct {
		message  string
		language types.Language
		category string
	}{
		{"Hello there", types.LanguageEnglish, "greeting"},
		{"good morning everyone", types.LanguageEnglish, "greeting"},
		{"who are you exactly?", types.LanguageEnglish, "about"},
		{"explain goroutines", types.LanguageEnglish, "general"},
		{"مرحبا بك", types.LanguageArabic, "greeting"},
		{"من أنت؟", types.LanguageArabic, "about"},
		{"ما هي عاصمة فرنسا", types.LanguageArabic, "general"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.category, SimulatedCategory(tt.message, tt.language), "message %q", tt.message)
	}
}

func TestSimulatedResponseComesFromCategorySet(t *testing.T) {
	for i := 0; i < 20; i++ {
		response := SimulatedResponse("hello", types.LanguageEnglish)
		assert.Contains(t, simulatedResponses[types.LanguageEnglish]["greeting"], response)
	}
}

func TestSimulatedResponseArabic(t *testing.T) {
	response := SimulatedResponse("أخبرني عن نفسك", types.LanguageArabic)
	assert.Contains(t, simulatedResponses[types.LanguageArabic]["about"], response)
}

func TestSimulatedResponseUnknownLanguageFallsBackToEnglish(t *testing.T) {
	response := SimulatedResponse("random question", types.Language("fr"))
	assert.Contains(t, simulatedResponses[types.LanguageEnglish]["general"], response)
}

func TestIsArabicGreeting(t *testing.T) {
	assert.True(t, IsArabicGreeting("السلام عليكم", types.LanguageArabic))
	assert.True(t, IsArabicGreeting("كيف حالك اليوم؟", types.LanguageArabic))
	assert.False(t, IsArabicGreeting("ما هي عاصمة فرنسا", types.LanguageArabic))
	// Only applies when the request language is Arabic.
	assert.False(t, IsArabicGreeting("مرحبا", types.LanguageEnglish))
}

func TestArabicGreetingResponse(t *testing.T) {
	identity := ArabicGreetingResponse("من أنت؟")
	assert.Contains(t, identity, "مساعد ذكاء اصطناعي")

	wellbeing := ArabicGreetingResponse("كيف حالك؟")
	assert.Contains(t, wellbeing, "أنا بخير")

	plain := ArabicGreetingResponse("صباح الخير")
	assert.Equal(t, cannedText(types.LanguageArabic, cannedGreeting), plain)
}

func TestCannedTextFallsBackToEnglish(t *testing.T) {
	require.NotEmpty(t, cannedText(types.Language("de"), cannedError))
	assert.Equal(t, cannedResponses[types.LanguageEnglish][cannedError], cannedText(types.Language("de"), cannedError))
}
