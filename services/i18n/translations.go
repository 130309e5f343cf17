// Package i18n resolves the response language for a request and holds the
// English/Arabic message catalog.
package i18n

import (
	"github.com/okanay/backend-chat-api/types"
)

// Message keys.
const (
	MsgUserRegistered      = "user_registered"
	MsgLoginSuccessful     = "login_successful"
	MsgLogoutSuccessful    = "logout_successful"
	MsgInvalidCredentials  = "invalid_credentials"
	MsgProfileUpdated      = "profile_updated"
	MsgPasswordChanged     = "password_changed"
	MsgMessageCreated      = "message_created"
	MsgConversationCreated = "conversation_created"
	MsgConversationDeleted = "conversation_deleted"
	MsgSummaryCreated      = "summary_created"
	MsgNotFound            = "not_found"
	MsgInternalError       = "internal_error"

	msgThrottleAI      = "throttle_ai"
	msgThrottleAuth    = "throttle_auth"
	msgThrottleSummary = "throttle_summary"
	msgThrottleGeneric = "throttle_generic"
)

var catalog = map[types.Language]map[string]string{
	types.LanguageEnglish: {
		MsgUserRegistered:      "User registered successfully",
		MsgLoginSuccessful:     "Login successful",
		MsgLogoutSuccessful:    "Logout successful",
		MsgInvalidCredentials:  "Invalid credentials",
		MsgProfileUpdated:      "Profile updated successfully",
		MsgPasswordChanged:     "Password changed successfully",
		MsgMessageCreated:      "Message created successfully",
		MsgConversationCreated: "Conversation created successfully",
		MsgConversationDeleted: "Conversation and its messages deleted successfully",
		MsgSummaryCreated:      "Summary created successfully",
		MsgNotFound:            "Not found.",
		MsgInternalError:       "An unexpected error occurred. Please try again later.",

		msgThrottleAI:      "You've reached your AI chat limit. Please try again later.",
		msgThrottleAuth:    "Too many authentication attempts. Please try again later.",
		msgThrottleSummary: "You've reached your summary generation limit. Please try again later.",
		msgThrottleGeneric: "Too many requests. Please try again later.",
	},
	types.LanguageArabic: {
		MsgUserRegistered:      "تم تسجيل المستخدم بنجاح",
		MsgLoginSuccessful:     "تم تسجيل الدخول بنجاح",
		MsgLogoutSuccessful:    "تم تسجيل الخروج بنجاح",
		MsgInvalidCredentials:  "بيانات الاعتماد غير صالحة",
		MsgProfileUpdated:      "تم تحديث الملف الشخصي بنجاح",
		MsgPasswordChanged:     "تم تغيير كلمة المرور بنجاح",
		MsgMessageCreated:      "تم إنشاء الرسالة بنجاح",
		MsgConversationCreated: "تم إنشاء المحادثة بنجاح",
		MsgConversationDeleted: "تم حذف المحادثة ورسائلها بنجاح",
		MsgSummaryCreated:      "تم إنشاء الملخص بنجاح",
		MsgNotFound:            "غير موجود.",
		MsgInternalError:       "حدث خطأ غير متوقع. يرجى المحاولة مرة أخرى لاحقًا.",

		msgThrottleAI:      "لقد وصلت إلى الحد الأقصى لمحادثات الذكاء الاصطناعي. يرجى المحاولة مرة أخرى لاحقًا.",
		msgThrottleAuth:    "محاولات مصادقة كثيرة جدًا. يرجى المحاولة مرة أخرى لاحقًا.",
		msgThrottleSummary: "لقد وصلت إلى الحد الأقصى لإنشاء الملخصات. يرجى المحاولة مرة أخرى لاحقًا.",
		msgThrottleGeneric: "طلبات كثيرة جدًا. يرجى المحاولة مرة أخرى لاحقًا.",
	},
}

// T looks up a message in the catalog, falling back to English for unknown
// languages and to the key itself for unknown keys.
func T(language types.Language, key string) string {
	messages, exists := catalog[language]
	if !exists {
		messages = catalog[types.LanguageEnglish]
	}

	if message, exists := messages[key]; exists {
		return message
	}
	if message, exists := catalog[types.LanguageEnglish][key]; exists {
		return message
	}
	return key
}

// ThrottleCategory groups route classes that share one rejection message.
type ThrottleCategory string

const (
	ThrottleCategoryAI      ThrottleCategory = "ai"
	ThrottleCategoryAuth    ThrottleCategory = "auth"
	ThrottleCategorySummary ThrottleCategory = "summary"
	ThrottleCategoryGeneric ThrottleCategory = "generic"
)

// ThrottleMessage returns the localized rejection text for a category.
func ThrottleMessage(language types.Language, category ThrottleCategory) string {
	switch category {
	case ThrottleCategoryAI:
		return T(language, msgThrottleAI)
	case ThrottleCategoryAuth:
		return T(language, msgThrottleAuth)
	case ThrottleCategorySummary:
		return T(language, msgThrottleSummary)
	default:
		return T(language, msgThrottleGeneric)
	}
}
