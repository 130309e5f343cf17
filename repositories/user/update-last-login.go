package UserRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) UpdateLastLogin(userID uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Last Login")

	query := `UPDATE users SET last_login = NOW() WHERE id = $1`

	_, err := r.db.Exec(query, userID)
	return err
}
