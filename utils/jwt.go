package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/okanay/backend-chat-api/configs"
	"github.com/okanay/backend-chat-api/types"
)

var (
	ErrInvalidToken = errors.New("invalid access token")
	ErrExpiredToken = errors.New("expired access token")
)

type accessTokenClaims struct {
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Language types.Language `json:"language"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func GenerateAccessToken(claims types.TokenClaims) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims{
		Username: claims.Username,
		Email:    claims.Email,
		Language: claims.Language,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    configs.JWT_ISSUER,
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(configs.ACCESS_TOKEN_DURATION)),
		},
	})

	return token.SignedString(jwtSecret())
}

func ValidateAccessToken(tokenString string) (*types.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &accessTokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret(), nil
	}, jwt.WithIssuer(configs.JWT_ISSUER))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*accessTokenClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &types.TokenClaims{
		UserID:   userID,
		Username: claims.Username,
		Email:    claims.Email,
		Language: claims.Language,
	}, nil
}

func GenerateRefreshToken() string {
	return GenerateRandomString(configs.REFRESH_TOKEN_LENGTH)
}
