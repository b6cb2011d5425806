package service

import (
	"github.com/MKhiriev/go-deep-thoughts/internal/config"
	"github.com/MKhiriev/go-deep-thoughts/internal/logger"
	"github.com/MKhiriev/go-deep-thoughts/internal/store"
)

type Services struct {
	AuthService    AuthService
	ThoughtService ThoughtService
	UserService    UserService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		ThoughtService: NewThoughtService(storages.ThoughtRepository, storages.UserRepository, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
	}
}
