package UserRepository

import (
	"time"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) SelectUserByEmail(email string) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By Email")

	var user types.User

	query := `SELECT * FROM users WHERE email = $1`

	row := r.db.QueryRow(query, email)
	err := utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}
