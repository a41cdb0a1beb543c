package store

import (
	"context"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/models"
)

type submissionRepository struct {
	store  *Store
	logger *logger.Logger
}

func NewSubmissionRepository(store *Store, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{store: store, logger: logger}
}

// Load returns submissions in insertion order. A document that is not a
// list of objects yields an empty list.
func (r *submissionRepository) Load(ctx context.Context) []models.Submission {
	subs := LoadOr(ctx, r.store, SubmissionsDocument, []models.Submission{})
	for i := range subs {
		if subs[i].Comments == nil {
			subs[i].Comments = []models.Comment{}
		}
	}
	if subs == nil {
		return []models.Submission{}
	}
	return subs
}

func (r *submissionRepository) Save(ctx context.Context, subs []models.Submission) error {
	if subs == nil {
		subs = []models.Submission{}
	}
	return r.store.Save(ctx, SubmissionsDocument, subs)
}
