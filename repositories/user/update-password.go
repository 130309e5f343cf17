package UserRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) UpdatePassword(userID uuid.UUID, newPassword string) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Password")

	hashedPassword, err := utils.EncryptPassword(newPassword)
	if err != nil {
		return err
	}

	query := `UPDATE users SET hashed_password = $1, updated_at = NOW() WHERE id = $2`

	_, err = r.db.Exec(query, hashedPassword, userID)
	return err
}
