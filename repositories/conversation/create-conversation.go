package ConversationRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) CreateConversation(userID uuid.UUID, title string, language types.Language) (types.Conversation, error) {
	defer utils.TimeTrack(time.Now(), "Conversation -> Create Conversation")

	var conversation types.Conversation

	query := `INSERT INTO conversations (user_id, title, language) VALUES ($1, $2, $3) RETURNING *`

	row := r.db.QueryRow(query, userID, title, language)
	err := utils.ScanStructByDBTags(row, &conversation)
	if err != nil {
		return conversation, err
	}

	return conversation, nil
}
