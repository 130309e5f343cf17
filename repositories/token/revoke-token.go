package TokenRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) RevokeRefreshToken(token string, reason string) error {
	defer utils.TimeTrack(time.Now(), "Token -> Revoke Refresh Token")

	query := `UPDATE refresh_tokens SET is_revoked = TRUE, revoked_reason = $1 WHERE token = $2`

	_, err := r.db.Exec(query, reason, token)
	return err
}

// RevokeAllForUser invalidates every active session, used after a
// password change.
func (r *Repository) RevokeAllForUser(userID uuid.UUID, reason string) error {
	defer utils.TimeTrack(time.Now(), "Token -> Revoke All For User")

	query := `UPDATE refresh_tokens SET is_revoked = TRUE, revoked_reason = $1 WHERE user_id = $2 AND is_revoked = FALSE`

	_, err := r.db.Exec(query, reason, userID)
	return err
}
