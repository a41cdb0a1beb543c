package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aura-portal/internal/crypto"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/models"
)

// AdminSeed is the credential written into a freshly created settings
// document.
type AdminSeed struct {
	Username string
	Password string
}

// EnsureDataFiles writes every document that does not exist yet: the seed
// events and videos, empty application and submission lists, an empty
// session table and settings holding the hashed admin credential with SMTP
// defaults. Existing documents are never touched.
func (s *Storages) EnsureDataFiles(ctx context.Context, credentials crypto.CredentialService, admin AdminSeed) error {
	log := logger.FromContext(ctx)

	seeds := []struct {
		name  string
		value func() (any, error)
	}{
		{EventsDocument, func() (any, error) { return models.DefaultEvents(), nil }},
		{VideosDocument, func() (any, error) { return models.DefaultVideos(), nil }},
		{ApplicationsDocument, func() (any, error) { return []models.Application{}, nil }},
		{SubmissionsDocument, func() (any, error) { return []models.Submission{}, nil }},
		{SessionsDocument, func() (any, error) { return models.SessionTable{}, nil }},
		{SettingsDocument, func() (any, error) {
			salt, hash, err := credentials.Hash(admin.Password, nil)
			if err != nil {
				return nil, err
			}
			return models.Settings{
				Admin: models.Credential{Username: admin.Username, Salt: salt, Hash: hash},
				SMTP:  models.DefaultSMTPSettings(),
			}, nil
		}},
	}

	for _, seed := range seeds {
		if s.Store.Exists(seed.name) {
			continue
		}

		value, err := seed.value()
		if err != nil {
			return fmt.Errorf("seeding %s: %w", seed.name, err)
		}
		if err := s.Store.Save(ctx, seed.name, value); err != nil {
			return fmt.Errorf("seeding %s: %w", seed.name, err)
		}
		log.Info().Str("document", seed.name).Msg("seeded missing document")
	}

	return nil
}
