package UserRepository

import (
	"fmt"
	"strings"
	"time"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// CreateUser inserts the user together with its profile in one transaction.
// The username is derived from the email local part and suffixed with a
// counter until it is unique.
func (r *Repository) CreateUser(request types.UserCreateRequest) (types.User, types.Profile, error) {
	defer utils.TimeTrack(time.Now(), "User -> Create User")

	var user types.User
	var profile types.Profile

	hashedPassword, err := utils.EncryptPassword(request.Password)
	if err != nil {
		return user, profile, err
	}

	username := request.Username
	if username == "" {
		username, err = r.uniqueUsernameFromEmail(request.Email)
		if err != nil {
			return user, profile, err
		}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return user, profile, err
	}
	defer tx.Rollback()

	userQuery := `INSERT INTO users (email, username, hashed_password) VALUES ($1, $2, $3) RETURNING *`
	row := tx.QueryRow(userQuery, request.Email, username, hashedPassword)
	if err := utils.ScanStructByDBTags(row, &user); err != nil {
		return user, profile, err
	}

	profileQuery := `INSERT INTO profiles (user_id, fullname, language_preference) VALUES ($1, $2, $3) RETURNING *`
	row = tx.QueryRow(profileQuery, user.ID, request.Fullname, request.LanguagePreference)
	if err := utils.ScanStructByDBTags(row, &profile); err != nil {
		return user, profile, err
	}

	if err := tx.Commit(); err != nil {
		return user, profile, err
	}

	return user, profile, nil
}

func (r *Repository) uniqueUsernameFromEmail(email string) (string, error) {
	base := strings.Split(email, "@")[0]

	username := base
	counter := 1
	for {
		var exists bool
		err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
		if err != nil {
			return "", err
		}
		if !exists {
			return username, nil
		}
		username = fmt.Sprintf("%s%d", base, counter)
		counter++
	}
}
