package ConversationRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// SelectConversationsByUserID lists the user's conversations, newest
// activity first. language narrows the list when non-empty.
func (r *Repository) SelectConversationsByUserID(userID uuid.UUID, language types.Language) ([]types.Conversation, error) {
	defer utils.TimeTrack(time.Now(), "Conversation -> Select Conversations By User ID")

	var conversations []types.Conversation

	query := `SELECT * FROM conversations WHERE user_id = $1 AND ($2 = '' OR language = $2) ORDER BY updated_at DESC`

	rows, err := r.db.Query(query, userID, language)
	if err != nil {
		return conversations, err
	}
	defer rows.Close()

	for rows.Next() {
		var conversation types.Conversation
		if err := utils.ScanStructByDBTagsForRows(rows, &conversation); err != nil {
			return conversations, err
		}
		conversations = append(conversations, conversation)
	}

	if err = rows.Err(); err != nil {
		return conversations, err
	}

	return conversations, nil
}
