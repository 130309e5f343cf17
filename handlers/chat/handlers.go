package ChatHandler

import (
	"context"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
)

// The stores mirror the repository surface the chat endpoints need. The
// concrete repositories satisfy them, tests plug in fakes.

type ConversationStore interface {
	CreateConversation(userID uuid.UUID, title string, language types.Language) (types.Conversation, error)
	SelectConversationsByUserID(userID uuid.UUID, language types.Language) ([]types.Conversation, error)
	SelectConversationByID(id uuid.UUID, userID uuid.UUID) (types.Conversation, error)
	DeleteConversation(id uuid.UUID, userID uuid.UUID) (int64, error)
	TouchConversation(id uuid.UUID) error
}

type MessageStore interface {
	CreateMessage(userID uuid.UUID, conversationID *uuid.UUID, content string, language types.Language, isUserMessage bool) (types.ChatMessage, error)
	SelectMessagesByUserID(userID uuid.UUID, language types.Language, conversationID *uuid.UUID) ([]types.ChatMessage, error)
	SelectMessagesByConversation(userID uuid.UUID, conversationID uuid.UUID) ([]types.ChatMessage, error)
	SelectRecentMessages(userID uuid.UUID, limit int) ([]types.ChatMessage, error)
}

type SummaryStore interface {
	CreateSummary(userID uuid.UUID, content string, language types.Language) (types.UserSummary, error)
	SelectSummariesByUserID(userID uuid.UUID, language types.Language) ([]types.UserSummary, error)
	SelectSummaryByID(id uuid.UUID, userID uuid.UUID) (types.UserSummary, error)
}

// Generator is the model proxy surface.
type Generator interface {
	Generate(ctx context.Context, modelID string, history []types.ChatMessage, message string, language types.Language) (string, error)
	Summarize(ctx context.Context, messages []types.ChatMessage, language types.Language) (string, error)
}

type Handler struct {
	Conversations ConversationStore
	Messages      MessageStore
	Summaries     SummaryStore
	AI            Generator
}

func NewHandler(conversations ConversationStore, messages MessageStore, summaries SummaryStore, ai Generator) *Handler {
	return &Handler{
		Conversations: conversations,
		Messages:      messages,
		Summaries:     summaries,
		AI:            ai,
	}
}
