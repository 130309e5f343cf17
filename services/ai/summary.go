package AIService

import (
	"context"
	"fmt"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/okanay/backend-chat-api/types"
)

const summarySystemPrompt = `You are an AI assistant that analyzes chat history and creates detailed user summaries.

Your task is to analyze the provided chat conversations and create a structured summary that includes:

1. User Interests: Key topics and themes the user frequently discusses or asks about. DO NOT list individual messages as interests. Instead, identify patterns and recurring themes.

2. Recent Activity: What the user has been working on or discussing recently. Focus on actual activities and projects, not just conversation topics.

Format the summary with clear sections and bullet points. Be specific and mention actual topics, technologies, or concepts the user has discussed. Do not make up information that is not in the chat history.

IMPORTANT: Do not list individual messages as interests or activities unless they represent a genuine interest or activity. Look for patterns across messages.`

// SummaryStats describes the messages that fed a summary.
type SummaryStats struct {
	ConversationCount int `json:"conversationCount"`
	UserMessages      int `json:"userMessages"`
	AIMessages        int `json:"aiMessages"`
}

// Summarize builds a structured summary of the user's chat history via the
// DeepSeek chat completion API. On any upstream problem the caller should
// fall back to BasicSummary.
func (s *Service) Summarize(ctx context.Context, messages []types.ChatMessage, language types.Language) (string, error) {
	conversations := groupByConversation(messages)
	stats := SummaryStatsFor(messages)

	systemPrompt := summarySystemPrompt
	if language == types.LanguageArabic {
		systemPrompt += "\nPlease write the summary in Arabic, using appropriate RTL formatting."
	}

	var analysis strings.Builder
	for i, conv := range conversations {
		fmt.Fprintf(&analysis, "Conversation %d:\n%s\n\n", i+1, conv)
	}

	userInstruction := fmt.Sprintf(`Analyze these conversations and create a detailed user summary as specified.
Focus on identifying genuine interests and activities, not just listing messages.
If you can't identify clear interests or activities, say so rather than listing generic or meaningless items.

%s

Chat Statistics:
- Total conversations: %d
- Total messages: %d
- User messages: %d
- AI responses: %d

Format your response with:
1. "User Interests:" section with bullet points of genuine interests
2. "Recent Activity:" section with bullet points of actual activities`,
		analysis.String(), stats.ConversationCount, len(messages), stats.UserMessages, stats.AIMessages)

	resp, err := s.summaryClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       summaryModel,
		Temperature: 0.2,
		MaxTokens:   1000,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userInstruction},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty summary", ErrUpstreamError)
	}

	return resp.Choices[0].Message.Content, nil
}

// SummaryStatsFor counts conversations and message roles in one pass.
func SummaryStatsFor(messages []types.ChatMessage) SummaryStats {
	var stats SummaryStats
	seen := map[string]bool{}

	for _, msg := range messages {
		key := conversationKey(msg)
		if !seen[key] {
			seen[key] = true
			stats.ConversationCount++
		}
		if msg.IsUserMessage {
			stats.UserMessages++
		} else {
			stats.AIMessages++
		}
	}

	return stats
}

// BasicSummary is the statistical fallback when the summarization API is
// unavailable. Same section layout as the model's output so clients render
// both the same way.
func BasicSummary(messages []types.ChatMessage, language types.Language) string {
	stats := SummaryStatsFor(messages)

	var b strings.Builder
	if language == types.LanguageArabic {
		b.WriteString("ملخص المستخدم\n\n")
		b.WriteString("اهتمامات المستخدم:\n\n")
		b.WriteString("• لم يتم تحديد اهتمامات محددة من المحادثات.\n")
		b.WriteString("\nالنشاط الأخير:\n\n")
		fmt.Fprintf(&b, "• قام بإرسال %d رسالة وتلقى %d رد من الذكاء الاصطناعي.\n", stats.UserMessages, stats.AIMessages)
		if stats.ConversationCount > 1 {
			fmt.Fprintf(&b, "• شارك في %d محادثات مختلفة.\n", stats.ConversationCount)
		} else {
			b.WriteString("• شارك في محادثة واحدة.\n")
		}
	} else {
		b.WriteString("User Summary\n\n")
		b.WriteString("User Interests:\n\n")
		b.WriteString("• No specific interests identified from conversations.\n")
		b.WriteString("\nRecent Activity:\n\n")
		fmt.Fprintf(&b, "• Sent %d messages and received %d AI responses.\n", stats.UserMessages, stats.AIMessages)
		if stats.ConversationCount > 1 {
			fmt.Fprintf(&b, "• Engaged in %d different conversations.\n", stats.ConversationCount)
		} else {
			b.WriteString("• Engaged in one conversation.\n")
		}
	}

	return b.String()
}

// groupByConversation renders each conversation as a role-prefixed
// transcript, messages in chronological order, conversations in a stable
// order.
func groupByConversation(messages []types.ChatMessage) []string {
	grouped := map[string][]types.ChatMessage{}
	for _, msg := range messages {
		key := conversationKey(msg)
		grouped[key] = append(grouped[key], msg)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	transcripts := make([]string, 0, len(keys))
	for _, key := range keys {
		msgs := grouped[key]
		sort.Slice(msgs, func(i, j int) bool { return msgs[i].CreatedAt.Before(msgs[j].CreatedAt) })

		var b strings.Builder
		for _, msg := range msgs {
			role := "AI"
			if msg.IsUserMessage {
				role = "User"
			}
			b.WriteString(role)
			b.WriteString(": ")
			b.WriteString(msg.Content)
			b.WriteString("\n")
		}
		transcripts = append(transcripts, b.String())
	}

	return transcripts
}

func conversationKey(msg types.ChatMessage) string {
	if msg.ConversationID == nil {
		return "no_conversation"
	}
	return msg.ConversationID.String()
}
