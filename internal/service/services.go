package service

import (
	"github.com/MKhiriev/go-user-manager/internal/config"
	"github.com/MKhiriev/go-user-manager/internal/logger"
	"github.com/MKhiriev/go-user-manager/internal/store"
)

type Services struct {
	UserService UserService
	AuthService AuthService
}

func NewServices(storages *store.Storages, hasher PasswordHasher, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.UserRepository, hasher, logger),
		AuthService: NewAuthService(storages.UserRepository, hasher, cfg, logger),
	}
}
