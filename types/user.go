package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (users)
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	Username       string    `db:"username" json:"username"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	LastLogin      time.Time `db:"last_login" json:"lastLogin"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// Table Model (profiles)
type Profile struct {
	UserID             uuid.UUID `db:"user_id" json:"userId"`
	Fullname           string    `db:"fullname" json:"fullname"`
	LanguagePreference Language  `db:"language_preference" json:"languagePreference"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}

// UserProfileResponse - secure model to return user + profile data
type UserProfileResponse struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	Fullname           string    `json:"fullname"`
	LanguagePreference Language  `json:"languagePreference"`
	CreatedAt          time.Time `json:"createdAt"`
	LastLogin          time.Time `json:"lastLogin"`
}

// UserRegisterRequest - user registration request
type UserRegisterRequest struct {
	Email              string `json:"email" binding:"required,email"`
	Fullname           string `json:"fullname" binding:"required,min=3,max=255"`
	Password           string `json:"password" binding:"required,min=6"`
	Password2          string `json:"password2" binding:"required"`
	LanguagePreference string `json:"language_preference"`
}

// UserLoginRequest - user login request
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest - password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ProfileUpdateRequest - partial profile update, nil fields stay untouched
type ProfileUpdateRequest struct {
	Fullname           *string `json:"fullname"`
	Email              *string `json:"email"`
	LanguagePreference *string `json:"language_preference"`
}

// UserCreateRequest - internal payload for the user repository
type UserCreateRequest struct {
	Email              string
	Username           string
	Password           string
	Fullname           string
	LanguagePreference Language
}
