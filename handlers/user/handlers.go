package UserHandler

import (
	ProfileRepository "github.com/okanay/backend-chat-api/repositories/profile"
	TokenRepository "github.com/okanay/backend-chat-api/repositories/token"
	UserRepository "github.com/okanay/backend-chat-api/repositories/user"
)

type Handler struct {
	UserRepository    *UserRepository.Repository
	ProfileRepository *ProfileRepository.Repository
	TokenRepository   *TokenRepository.Repository
}

func NewHandler(u *UserRepository.Repository, p *ProfileRepository.Repository, t *TokenRepository.Repository) *Handler {
	return &Handler{
		UserRepository:    u,
		ProfileRepository: p,
		TokenRepository:   t,
	}
}
