package store

import (
	"context"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/models"
)

type eventRepository struct {
	store  *Store
	logger *logger.Logger
}

func NewEventRepository(store *Store, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{store: store, logger: logger}
}

func (r *eventRepository) Load(ctx context.Context) []models.Event {
	events := LoadOr(ctx, r.store, EventsDocument, []models.Event{})
	if events == nil {
		return []models.Event{}
	}
	return events
}

func (r *eventRepository) Save(ctx context.Context, events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}
	return r.store.Save(ctx, EventsDocument, events)
}

type videoRepository struct {
	store  *Store
	logger *logger.Logger
}

func NewVideoRepository(store *Store, logger *logger.Logger) VideoRepository {
	logger.Debug().Msg("creating video repository")
	return &videoRepository{store: store, logger: logger}
}

func (r *videoRepository) Load(ctx context.Context) []models.Video {
	videos := LoadOr(ctx, r.store, VideosDocument, []models.Video{})
	if videos == nil {
		return []models.Video{}
	}
	return videos
}

func (r *videoRepository) Save(ctx context.Context, videos []models.Video) error {
	if videos == nil {
		videos = []models.Video{}
	}
	return r.store.Save(ctx, VideosDocument, videos)
}
