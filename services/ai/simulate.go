package AIService

import (
	"math/rand"
	"strings"

	"github.com/okanay/backend-chat-api/types"
)

type cannedKind string

const (
	cannedGreeting      cannedKind = "greeting"
	cannedFallback      cannedKind = "fallback"
	cannedUnderstanding cannedKind = "understanding"
	cannedError         cannedKind = "error"
)

var cannedResponses = map[types.Language]map[cannedKind]string{
	types.LanguageEnglish: {
		cannedGreeting:      "Hello! I'm an AI assistant. How can I help you today?",
		cannedFallback:      "I'm sorry, I couldn't generate a proper response. Could you try asking something else?",
		cannedUnderstanding: "I'm sorry, I don't understand. Could you rephrase that?",
		cannedError:         "Sorry, there was an error processing your request. Please try again.",
	},
	types.LanguageArabic: {
		cannedGreeting:      "مرحبًا! أنا مساعد ذكاء اصطناعي. كيف يمكنني مساعدتك اليوم؟",
		cannedFallback:      "آسف، لم أتمكن من إنشاء استجابة مناسبة. هل يمكنك تجربة سؤال آخر؟",
		cannedUnderstanding: "آسف، لم أفهم. هل يمكنك إعادة صياغة ذلك؟",
		cannedError:         "عذرًا، حدث خطأ أثناء معالجة طلبك. يرجى المحاولة مرة أخرى.",
	},
}

func cannedText(language types.Language, kind cannedKind) string {
	if set, exists := cannedResponses[language]; exists {
		return set[kind]
	}
	return cannedResponses[types.LanguageEnglish][kind]
}

// simulatedResponses covers the time the inference API is down. A few
// variants per category so repeated failures do not read like a broken
// record.
var simulatedResponses = map[types.Language]map[string][]string{
	types.LanguageEnglish: {
		"greeting": {
			"Hello! How can I assist you today?",
			"Hi there! What can I help you with?",
			"Greetings! How may I be of service?",
		},
		"about": {
			"I'm an AI assistant designed to help answer your questions and provide information.",
			"I'm a language model trained to assist with various tasks and answer questions.",
			"I'm your AI assistant, ready to help with information and tasks.",
		},
		"general": {
			"That's an interesting question. Let me think about that...",
			"I understand what you're asking. Here's what I know about that topic...",
			"Thanks for your question. I'd be happy to help with that.",
			"I appreciate your question. Let me provide some information on that.",
			"That's a good point. Here's my perspective on that matter.",
		},
	},
	types.LanguageArabic: {
		"greeting": {
			"مرحبًا! كيف يمكنني مساعدتك اليوم؟",
			"أهلاً! بماذا يمكنني مساعدتك؟",
			"تحياتي! كيف يمكنني خدمتك؟",
		},
		"about": {
			"أنا مساعد ذكاء اصطناعي مصمم للمساعدة في الإجابة على أسئلتك وتقديم المعلومات.",
			"أنا نموذج لغوي تم تدريبه للمساعدة في مختلف المهام والإجابة على الأسئلة.",
			"أنا مساعدك الذكي، جاهز للمساعدة في المعلومات والمهام.",
		},
		"general": {
			"هذا سؤال مثير للاهتمام. دعني أفكر في ذلك...",
			"أفهم ما تسأل عنه. إليك ما أعرفه عن هذا الموضوع...",
			"شكرًا على سؤالك. يسعدني المساعدة في ذلك.",
			"أقدر سؤالك. دعني أقدم بعض المعلومات حول ذلك.",
			"هذه نقطة جيدة. إليك وجهة نظري في هذه المسألة.",
		},
	},
}

var greetingWords = map[types.Language][]string{
	types.LanguageEnglish: {"hello", "hi", "hey", "greetings", "good morning", "good afternoon"},
	types.LanguageArabic:  {"مرحبا", "أهلا", "السلام عليكم", "صباح الخير", "مساء الخير"},
}

var identityWords = map[types.Language][]string{
	types.LanguageEnglish: {"who are you", "what are you", "tell me about yourself", "your name"},
	types.LanguageArabic:  {"من أنت", "ما أنت", "أخبرني عن نفسك", "ما هو اسمك"},
}

// SimulatedResponse picks a local reply when the upstream is unreachable,
// keyed off the message so greetings still get greeted.
func SimulatedResponse(message string, language types.Language) string {
	category := SimulatedCategory(message, language)

	set, exists := simulatedResponses[language]
	if !exists {
		set = simulatedResponses[types.LanguageEnglish]
	}
	responses, exists := set[category]
	if !exists {
		responses = simulatedResponses[types.LanguageEnglish]["general"]
	}

	return responses[rand.Intn(len(responses))]
}

// SimulatedCategory classifies a message as greeting, about or general.
func SimulatedCategory(message string, language types.Language) string {
	lower := strings.ToLower(message)

	words, exists := greetingWords[language]
	if !exists {
		words = greetingWords[types.LanguageEnglish]
	}
	for _, word := range words {
		if strings.Contains(lower, word) {
			return "greeting"
		}
	}

	words, exists = identityWords[language]
	if !exists {
		words = identityWords[types.LanguageEnglish]
	}
	for _, word := range words {
		if strings.Contains(lower, word) {
			return "about"
		}
	}

	return "general"
}

var arabicGreetings = []string{"مرحبا", "السلام عليكم", "أهلا", "صباح الخير", "مساء الخير", "كيف حالك", "من أنت"}

// IsArabicGreeting reports whether an Arabic message is one of the common
// greetings the models tend to mangle.
func IsArabicGreeting(message string, language types.Language) bool {
	if language != types.LanguageArabic {
		return false
	}
	lower := strings.ToLower(message)
	for _, greeting := range arabicGreetings {
		if strings.Contains(lower, greeting) {
			return true
		}
	}
	return false
}

// ArabicGreetingResponse answers a common Arabic greeting with a fixed
// reply instead of whatever the model produced.
func ArabicGreetingResponse(message string) string {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "من أنت") {
		return "أنا مساعد ذكاء اصطناعي مصمم للمساعدة في الإجابة على أسئلتك وتقديم المعلومات. كيف يمكنني مساعدتك اليوم؟"
	}
	if strings.Contains(lower, "كيف حالك") || strings.Contains(lower, "كيفك") {
		return "أنا بخير، شكراً على سؤالك! كيف يمكنني مساعدتك اليوم؟"
	}
	return cannedText(types.LanguageArabic, cannedGreeting)
}
