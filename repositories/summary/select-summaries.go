package SummaryRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// SelectSummariesByUserID lists the user's summaries, newest first.
// language narrows the list when non-empty.
func (r *Repository) SelectSummariesByUserID(userID uuid.UUID, language types.Language) ([]types.UserSummary, error) {
	defer utils.TimeTrack(time.Now(), "Summary -> Select Summaries By User ID")

	var summaries []types.UserSummary

	query := `SELECT * FROM summaries WHERE user_id = $1 AND ($2 = '' OR language = $2) ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID, language)
	if err != nil {
		return summaries, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary types.UserSummary
		if err := utils.ScanStructByDBTagsForRows(rows, &summary); err != nil {
			return summaries, err
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return summaries, err
	}

	return summaries, nil
}
