package ConversationRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// SelectConversationByID is scoped to the owner, another user's
// conversation comes back as sql.ErrNoRows.
func (r *Repository) SelectConversationByID(id uuid.UUID, userID uuid.UUID) (types.Conversation, error) {
	defer utils.TimeTrack(time.Now(), "Conversation -> Select Conversation By ID")

	var conversation types.Conversation

	query := `SELECT * FROM conversations WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRow(query, id, userID)
	err := utils.ScanStructByDBTags(row, &conversation)
	if err != nil {
		return conversation, err
	}

	return conversation, nil
}
