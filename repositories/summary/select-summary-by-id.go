package SummaryRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// SelectSummaryByID is scoped to the owner, another user's summary comes
// back as sql.ErrNoRows.
func (r *Repository) SelectSummaryByID(id uuid.UUID, userID uuid.UUID) (types.UserSummary, error) {
	defer utils.TimeTrack(time.Now(), "Summary -> Select Summary By ID")

	var summary types.UserSummary

	query := `SELECT * FROM summaries WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRow(query, id, userID)
	err := utils.ScanStructByDBTags(row, &summary)
	if err != nil {
		return summary, err
	}

	return summary, nil
}
