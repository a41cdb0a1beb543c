package store

import (
	"context"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/models"
)

type settingsRepository struct {
	store  *Store
	logger *logger.Logger
}

func NewSettingsRepository(store *Store, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{store: store, logger: logger}
}

// Load returns the stored settings. An absent or corrupt document yields
// zero settings: no admin credential and SMTP disabled.
func (r *settingsRepository) Load(ctx context.Context) models.Settings {
	return LoadOr(ctx, r.store, SettingsDocument, models.Settings{})
}

func (r *settingsRepository) Save(ctx context.Context, settings models.Settings) error {
	return r.store.Save(ctx, SettingsDocument, settings)
}
