package ProfileRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

// UpdateProfile applies the non-nil fields only. COALESCE keeps the stored
// value when a field was not sent.
func (r *Repository) UpdateProfile(userID uuid.UUID, fullname *string, language *types.Language) (types.Profile, error) {
	defer utils.TimeTrack(time.Now(), "Profile -> Update Profile")

	var profile types.Profile

	query := `
		UPDATE profiles
		SET fullname = COALESCE($1, fullname),
		    language_preference = COALESCE($2, language_preference),
		    updated_at = NOW()
		WHERE user_id = $3
		RETURNING *`

	row := r.db.QueryRow(query, fullname, language, userID)
	err := utils.ScanStructByDBTags(row, &profile)
	if err != nil {
		return profile, err
	}

	return profile, nil
}
