package service

import (
	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/crypto"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/notify"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/internal/validators"
)

type Services struct {
	SessionService    SessionService
	AuthService       AuthService
	MembershipService MembershipService
	ContentService    ContentService
	SubmissionService SubmissionService
	SettingsService   SettingsService
}

func NewServices(storages *store.Storages, mailer notify.Mailer, credentials crypto.CredentialService, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewFormValidator()
	sessions := NewSessionService(storages.SessionRepository, cfg.App.SessionTTL, logger)

	return &Services{
		SessionService: sessions,
		AuthService: NewAuthService(
			sessions,
			storages.SettingsRepository,
			storages.ApplicationRepository,
			credentials,
			validator,
			logger,
		),
		MembershipService: NewMembershipService(
			storages.ApplicationRepository,
			storages.SettingsRepository,
			credentials,
			NewApplicationNotifier(mailer, logger),
			validator,
			logger,
		),
		ContentService:    NewContentService(storages.EventRepository, storages.VideoRepository, storages.UploadStorage, validator, logger),
		SubmissionService: NewSubmissionService(storages.SubmissionRepository, storages.UploadStorage, validator, logger),
		SettingsService: NewSettingsService(
			storages.SettingsRepository,
			credentials,
			store.AdminSeed{Username: cfg.App.AdminUsername, Password: cfg.App.AdminPassword},
			logger,
		),
	}
}
