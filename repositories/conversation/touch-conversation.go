package ConversationRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/utils"
)

// TouchConversation bumps updated_at after a new message.
func (r *Repository) TouchConversation(id uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Conversation -> Touch Conversation")

	query := `UPDATE conversations SET updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(query, id)
	return err
}
