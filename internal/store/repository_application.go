// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/models"
)

// applicationRepository keeps membership applications in
// applications.json.
//
// Records are read generically first so that documents written by older
// versions (missing "approved", "goal", "concerns" or a malformed "plan")
// can be detected and repaired. Fields outside the known set are dropped
// when the document is rewritten.
type applicationRepository struct {
	store  *Store
	logger *logger.Logger
}

func NewApplicationRepository(store *Store, logger *logger.Logger) ApplicationRepository {
	logger.Debug().Msg("creating application repository")
	return &applicationRepository{store: store, logger: logger}
}

// Load reads, repairs and (when repair changed anything) rewrites the
// document inside one critical section.
func (r *applicationRepository) Load(ctx context.Context) []models.Application {
	log := logger.FromContext(ctx)

	var apps []models.Application
	err := Update(ctx, r.store, ApplicationsDocument, []any{}, func(raw []any) ([]any, bool, error) {
		records := make([]map[string]any, 0, len(raw))
		dropped := false
		for _, item := range raw {
			rec, ok := item.(map[string]any)
			if !ok {
				dropped = true
				continue
			}
			records = append(records, rec)
		}

		var changed bool
		apps, changed = models.EnsureApplicationFields(records)
		if !changed && !dropped {
			return nil, false, nil
		}

		log.Info().Int("applications", len(apps)).Msg("repairing applications document")
		out := make([]any, len(apps))
		for i := range apps {
			out[i] = apps[i]
		}
		return out, true, nil
	})
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.Load").Msg("error rewriting repaired applications")
	}

	return apps
}

func (r *applicationRepository) Save(ctx context.Context, apps []models.Application) error {
	if apps == nil {
		apps = []models.Application{}
	}
	return r.store.Save(ctx, ApplicationsDocument, apps)
}
