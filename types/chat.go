package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (conversations)
type Conversation struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Title     string    `db:"title" json:"title"`
	Language  Language  `db:"language" json:"language"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Table Model (messages)
type ChatMessage struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	UserID         uuid.UUID  `db:"user_id" json:"userId"`
	ConversationID *uuid.UUID `db:"conversation_id" json:"conversationId,omitempty"`
	Content        string     `db:"content" json:"content"`
	Language       Language   `db:"language" json:"language"`
	IsUserMessage  bool       `db:"is_user_message" json:"isUserMessage"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

// Table Model (summaries)
type UserSummary struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Content   string    `db:"content" json:"content"`
	Language  Language  `db:"language" json:"language"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// MessageCreateRequest - manual message creation request
type MessageCreateRequest struct {
	Content        string     `json:"content" binding:"required"`
	ConversationID *uuid.UUID `json:"conversation_id"`
	IsUserMessage  *bool      `json:"is_user_message"`
}

// ConversationCreateRequest - conversation creation request
type ConversationCreateRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Language string `json:"language"`
}

// SummaryCreateRequest - manual summary creation request
type SummaryCreateRequest struct {
	Content  string `json:"content" binding:"required"`
	Language string `json:"language"`
}

// AIChatRequest - AI chat turn request
type AIChatRequest struct {
	Message        string     `json:"message" binding:"required"`
	ConversationID *uuid.UUID `json:"conversation_id"`
	Language       string     `json:"language"`
	Model          string     `json:"model"`
}

// ChatSummaryRequest - AI summary generation request
type ChatSummaryRequest struct {
	Language    string `json:"language"`
	MaxMessages int    `json:"max_messages"`
}
