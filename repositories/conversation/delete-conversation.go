package ConversationRepository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/utils"
)

// DeleteConversation removes the conversation and its messages in one
// transaction and returns how many messages went with it.
func (r *Repository) DeleteConversation(id uuid.UUID, userID uuid.UUID) (int64, error) {
	defer utils.TimeTrack(time.Now(), "Conversation -> Delete Conversation")

	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	messagesQuery := `DELETE FROM messages WHERE conversation_id = $1 AND user_id = $2`
	result, err := tx.Exec(messagesQuery, id, userID)
	if err != nil {
		return 0, err
	}

	deletedMessages, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	conversationQuery := `DELETE FROM conversations WHERE id = $1 AND user_id = $2`
	result, err = tx.Exec(conversationQuery, id, userID)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return deletedMessages, nil
}
