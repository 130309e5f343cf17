package UserRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) SelectUserByID(id uuid.UUID) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By ID")

	var user types.User

	query := `SELECT * FROM users WHERE id = $1`

	row := r.db.QueryRow(query, id)
	err := utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}
