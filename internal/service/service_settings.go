package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/aura-portal/internal/crypto"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/models"
)

type settingsService struct {
	settingsRepository store.SettingsRepository
	credentials        crypto.CredentialService

	// admin is the credential written by EnsureAdmin.
	admin store.AdminSeed

	logger *logger.Logger
}

func NewSettingsService(
	settingsRepository store.SettingsRepository,
	credentials crypto.CredentialService,
	admin store.AdminSeed,
	logger *logger.Logger,
) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		credentials:        credentials,
		admin:              admin,
		logger:             logger,
	}
}

func (s *settingsService) Settings(ctx context.Context) models.Settings {
	return s.settingsRepository.Load(ctx)
}

// UpdateSMTP replaces the SMTP section. An empty or unparsable port becomes
// 587 and an empty sender name becomes the site name.
func (s *settingsService) UpdateSMTP(ctx context.Context, form models.SMTPForm) error {
	port, err := strconv.Atoi(strings.TrimSpace(form.Port))
	if err != nil {
		port = models.DefaultSMTPPort
	}
	fromName := form.FromName
	if fromName == "" {
		fromName = models.DefaultFromName
	}

	settings := s.settingsRepository.Load(ctx)
	settings.SMTP = models.SMTPSettings{
		Enabled:    form.Enabled,
		Host:       form.Host,
		Port:       port,
		Username:   form.Username,
		Password:   form.Password,
		FromName:   fromName,
		AdminEmail: form.AdminEmail,
		UseTLS:     form.UseTLS,
	}

	if err = s.settingsRepository.Save(ctx, settings); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Bool("enabled", form.Enabled).Str("host", form.Host).Msg("smtp settings updated")
	return nil
}

// EnsureAdmin writes the configured admin credential when the settings
// document has none. An existing credential is left alone.
func (s *settingsService) EnsureAdmin(ctx context.Context) error {
	settings := s.settingsRepository.Load(ctx)
	if settings.Admin.Username != "" && settings.Admin.Hash != "" {
		return nil
	}

	salt, hash, err := s.credentials.Hash(s.admin.Password, nil)
	if err != nil {
		return err
	}
	settings.Admin = models.Credential{Username: s.admin.Username, Salt: salt, Hash: hash}
	if settings.SMTP == (models.SMTPSettings{}) {
		settings.SMTP = models.DefaultSMTPSettings()
	}

	if err = s.settingsRepository.Save(ctx, settings); err != nil {
		return err
	}
	logger.FromContext(ctx).Warn().Str("username", s.admin.Username).Msg("admin credential was missing and has been recreated")
	return nil
}
