package store

import (
	"context"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/models"
)

// sessionRepository keeps the session table in sessions.json.
type sessionRepository struct {
	store  *Store
	logger *logger.Logger
}

func NewSessionRepository(store *Store, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{store: store, logger: logger}
}

func (r *sessionRepository) Load(ctx context.Context) models.SessionTable {
	table := LoadOr(ctx, r.store, SessionsDocument, models.SessionTable{})
	if table == nil {
		return models.SessionTable{}
	}
	return table
}

func (r *sessionRepository) Save(ctx context.Context, table models.SessionTable) error {
	if table == nil {
		table = models.SessionTable{}
	}
	return r.store.Save(ctx, SessionsDocument, table)
}
