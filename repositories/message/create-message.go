package MessageRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) CreateMessage(userID uuid.UUID, conversationID *uuid.UUID, content string, language types.Language, isUserMessage bool) (types.ChatMessage, error) {
	defer utils.TimeTrack(time.Now(), "Message -> Create Message")

	var message types.ChatMessage

	query := `INSERT INTO messages (user_id, conversation_id, content, language, is_user_message) VALUES ($1, $2, $3, $4, $5) RETURNING *`

	row := r.db.QueryRow(query, userID, conversationID, content, language, isUserMessage)
	err := utils.ScanStructByDBTags(row, &message)
	if err != nil {
		return message, err
	}

	return message, nil
}
