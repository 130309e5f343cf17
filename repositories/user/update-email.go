package UserRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) UpdateEmail(userID uuid.UUID, email string) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Update Email")

	var user types.User

	query := `UPDATE users SET email = $1, updated_at = NOW() WHERE id = $2 RETURNING *`

	row := r.db.QueryRow(query, email, userID)
	err := utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}

// EmailInUse reports whether another account already owns the email.
func (r *Repository) EmailInUse(email string, excludeUserID uuid.UUID) (bool, error) {
	defer utils.TimeTrack(time.Now(), "User -> Email In Use")

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id != $2)`

	err := r.db.QueryRow(query, email, excludeUserID).Scan(&exists)
	return exists, err
}
