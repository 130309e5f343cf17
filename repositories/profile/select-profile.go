package ProfileRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/okanay/backend-chat-api/types"
	"github.com/okanay/backend-chat-api/utils"
)

func (r *Repository) SelectProfileByUserID(userID uuid.UUID) (types.Profile, error) {
	defer utils.TimeTrack(time.Now(), "Profile -> Select Profile By User ID")

	var profile types.Profile

	query := `SELECT * FROM profiles WHERE user_id = $1`

	row := r.db.QueryRow(query, userID)
	err := utils.ScanStructByDBTags(row, &profile)
	if err != nil {
		return profile, err
	}

	return profile, nil
}

// SelectLanguagePreference is the cheap lookup the language middleware
// uses, so it selects the single column instead of the row.
func (r *Repository) SelectLanguagePreference(userID uuid.UUID) (types.Language, error) {
	defer utils.TimeTrack(time.Now(), "Profile -> Select Language Preference")

	var language types.Language

	query := `SELECT language_preference FROM profiles WHERE user_id = $1`

	err := r.db.QueryRow(query, userID).Scan(&language)
	if err != nil {
		return language, err
	}

	return language, nil
}
