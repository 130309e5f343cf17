package ProfileHandler

import (
	ProfileRepository "github.com/okanay/backend-chat-api/repositories/profile"
	UserRepository "github.com/okanay/backend-chat-api/repositories/user"
	cache "github.com/okanay/backend-chat-api/services"
)

type Handler struct {
	UserRepository    *UserRepository.Repository
	ProfileRepository *ProfileRepository.Repository
	LanguageCache     *cache.Cache
}

func NewHandler(u *UserRepository.Repository, p *ProfileRepository.Repository, c *cache.Cache) *Handler {
	return &Handler{
		UserRepository:    u,
		ProfileRepository: p,
		LanguageCache:     c,
	}
}
