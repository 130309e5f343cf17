package types

// Language - supported user-facing language enum type
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

var SupportedLanguages = []Language{LanguageEnglish, LanguageArabic}

func (l Language) IsValid() bool {
	for _, supported := range SupportedLanguages {
		if l == supported {
			return true
		}
	}
	return false
}
