package SummaryRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) CreateSummary(userID uuid.UUID, content string, language types.Language) (types.UserSummary, error) {
	defer utils.TimeTrack(time.Now(), "Summary -> Create Summary")

	var summary types.UserSummary

	query := `INSERT INTO summaries (user_id, content, language) VALUES ($1, $2, $3) RETURNING *`

	row := r.db.QueryRow(query, userID, content, language)
	err := utils.ScanStructByDBTags(row, &summary)
	if err != nil {
		return summary, err
	}

	return summary, nil
}
