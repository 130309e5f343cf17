package i18n

import (
	"strings"

	"github.com/okanay/backend-chat-api/types"
)

const DefaultLanguage = types.LanguageEnglish

// Resolve picks the response language. The authenticated profile preference
// always wins, then a coarse match on the Accept-Language header's leading
// tag, then the default. Pure function.
func Resolve(profileLanguage types.Language, acceptLanguage string) types.Language {
	if profileLanguage.IsValid() {
		return profileLanguage
	}

	if tag := leadingLanguageTag(acceptLanguage); tag != "" {
		candidate := types.Language(tag)
		if candidate.IsValid() {
			return candidate
		}
	}

	return DefaultLanguage
}

// leadingLanguageTag extracts the primary subtag of the first entry of an
// Accept-Language header ("ar-SA,ar;q=0.9,en;q=0.8" -> "ar").
func leadingLanguageTag(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	first := header
	if idx := strings.IndexByte(first, ','); idx >= 0 {
		first = first[:idx]
	}
	if idx := strings.IndexByte(first, ';'); idx >= 0 {
		first = first[:idx]
	}
	if idx := strings.IndexByte(first, '-'); idx >= 0 {
		first = first[:idx]
	}

	return strings.ToLower(strings.TrimSpace(first))
}
