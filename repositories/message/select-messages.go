package MessageRepository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// SelectMessagesByUserID lists the user's messages, newest first.
// language and conversationID narrow the list when set.
func (r *Repository) SelectMessagesByUserID(userID uuid.UUID, language types.Language, conversationID *uuid.UUID) ([]types.ChatMessage, error) {
	defer utils.TimeTrack(time.Now(), "Message -> Select Messages By User ID")

	query := `
		SELECT * FROM messages
		WHERE user_id = $1
		  AND ($2 = '' OR language = $2)
		  AND ($3::uuid IS NULL OR conversation_id = $3)
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID, language, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

// SelectMessagesByConversation returns a conversation's transcript in
// chronological order.
func (r *Repository) SelectMessagesByConversation(userID uuid.UUID, conversationID uuid.UUID) ([]types.ChatMessage, error) {
	defer utils.TimeTrack(time.Now(), "Message -> Select Messages By Conversation")

	query := `SELECT * FROM messages WHERE user_id = $1 AND conversation_id = $2 ORDER BY created_at ASC`

	rows, err := r.db.Query(query, userID, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

// SelectRecentMessages returns the user's latest limit messages in
// chronological order, across all conversations.
func (r *Repository) SelectRecentMessages(userID uuid.UUID, limit int) ([]types.ChatMessage, error) {
	defer utils.TimeTrack(time.Now(), "Message -> Select Recent Messages")

	query := `
		SELECT * FROM (
			SELECT * FROM messages WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2
		) recent ORDER BY created_at ASC`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]types.ChatMessage, error) {
	var messages []types.ChatMessage

	for rows.Next() {
		var message types.ChatMessage
		if err := utils.ScanStructByDBTagsForRows(rows, &message); err != nil {
			return messages, err
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return messages, err
	}

	return messages, nil
}
