package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okanay/backend-chat-api/types"
)

func TestResolve_ProfilePreferenceWins(t *testing.T) {
	got := Resolve(types.LanguageArabic, "en-US,en;q=0.9")
	assert.Equal(t, types.LanguageArabic, got)
}

func TestResolve_HeaderLeadingTag(t *testing.T) {
	tests := []struct {
		header string
		want   types.Language
	}{
		{"ar-SA", types.LanguageArabic},
		{"ar-SA,ar;q=0.9,en;q=0.8", types.LanguageArabic},
		{"AR", types.LanguageArabic},
		{"en-GB,en;q=0.9", types.LanguageEnglish},
		{"fr-FR,fr;q=0.9", types.LanguageEnglish},
		{"", types.LanguageEnglish},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve("", tt.header), "header %q", tt.header)
	}
}

func TestResolve_DefaultsToEnglish(t *testing.T) {
	assert.Equal(t, types.LanguageEnglish, Resolve("", ""))
	assert.Equal(t, types.LanguageEnglish, Resolve("de", ""))
}

func TestT_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Login successful", T("fr", MsgLoginSuccessful))
	assert.Equal(t, "تم تسجيل الدخول بنجاح", T(types.LanguageArabic, MsgLoginSuccessful))
	assert.Equal(t, "does_not_exist", T(types.LanguageEnglish, "does_not_exist"))
}

func TestThrottleMessage_PerCategory(t *testing.T) {
	assert.Contains(t, ThrottleMessage(types.LanguageEnglish, ThrottleCategoryAuth), "authentication attempts")
	assert.Contains(t, ThrottleMessage(types.LanguageEnglish, ThrottleCategoryAI), "AI chat limit")
	assert.Contains(t, ThrottleMessage(types.LanguageEnglish, ThrottleCategorySummary), "summary generation limit")
	assert.Contains(t, ThrottleMessage(types.LanguageEnglish, ThrottleCategoryGeneric), "Too many requests")

	// Unknown category falls back to the generic message.
	assert.Contains(t, ThrottleMessage(types.LanguageArabic, ThrottleCategory("x")), "طلبات")
}
