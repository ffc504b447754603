package service

import (
	"github.com/jiminoh-dev/linkup/internal/adapter"
	"github.com/jiminoh-dev/linkup/internal/config"
	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/internal/store"
)

type Services struct {
	AuthService    AuthService
	ContactService ContactService
}

func NewServices(storages *store.Storages, identity adapter.IdentityProvider, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, identity, cfg, logger),
		ContactService: NewContactService(storages.ContactRepository, logger),
	}
}
