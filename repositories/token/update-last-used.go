package TokenRepository

import (
	"time"

	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) UpdateLastUsed(token string) error {
	defer utils.TimeTrack(time.Now(), "Token -> Update Last Used")

	query := `UPDATE refresh_tokens SET last_used_at = NOW() WHERE token = $1`

	_, err := r.db.Exec(query, token)
	return err
}
