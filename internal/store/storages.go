// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/logger"
)

// Storages groups every repository over one shared [Store] plus the upload
// storage, ready to be handed to the service layer.
type Storages struct {
	Store *Store

	SessionRepository     SessionRepository
	ApplicationRepository ApplicationRepository
	SubmissionRepository  SubmissionRepository
	EventRepository       EventRepository
	VideoRepository       VideoRepository
	SettingsRepository    SettingsRepository
	UploadStorage         UploadStorage
}

// NewStorages creates the data and upload directories and wires all
// repositories. It does not seed documents; see [Storages.EnsureDataFiles].
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	store, err := NewStore(cfg.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("document store: %w", err)
	}

	uploads, err := NewUploadStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("upload storage: %w", err)
	}

	return &Storages{
		Store:                 store,
		SessionRepository:     NewSessionRepository(store, logger),
		ApplicationRepository: NewApplicationRepository(store, logger),
		SubmissionRepository:  NewSubmissionRepository(store, logger),
		EventRepository:       NewEventRepository(store, logger),
		VideoRepository:       NewVideoRepository(store, logger),
		SettingsRepository:    NewSettingsRepository(store, logger),
		UploadStorage:         uploads,
	}, nil
}
