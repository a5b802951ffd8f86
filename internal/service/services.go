package service

import (
	"github.com/jovanamartatilova/librareads/internal/config"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/mail"
	"github.com/jovanamartatilova/librareads/internal/store"
)

type Services struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	ProfileService       ProfileService
	LibraryService       LibraryService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, mailer mail.Mailer, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, cfg.App, logger),
		PasswordResetService: NewPasswordResetService(storages.UserRepository, storages.ResetTokenRepository, mailer, cfg.App, logger),
		ProfileService:       NewProfileService(storages.UserRepository, logger),
		LibraryService:       NewLibraryService(storages.BookRepository, logger),
		AppInfoService:       appInfoService,
	}, nil
}
