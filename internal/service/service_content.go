package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/metrics"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/internal/utils"
	"github.com/MKhiriev/aura-portal/internal/validators"
	"github.com/MKhiriev/aura-portal/models"
)

// contentIDBytes gives the 8 hex characters after the evt_/vid_/sub_ prefix.
const contentIDBytes = 4

type contentService struct {
	eventRepository store.EventRepository
	videoRepository store.VideoRepository
	uploads         store.UploadStorage
	validator       validators.Validator

	logger *logger.Logger
}

func NewContentService(
	eventRepository store.EventRepository,
	videoRepository store.VideoRepository,
	uploads store.UploadStorage,
	validator validators.Validator,
	logger *logger.Logger,
) ContentService {
	return &contentService{
		eventRepository: eventRepository,
		videoRepository: videoRepository,
		uploads:         uploads,
		validator:       validator,
		logger:          logger,
	}
}

func (c *contentService) ListEvents(ctx context.Context) []models.Event {
	return c.eventRepository.Load(ctx)
}

func (c *contentService) AddEvent(ctx context.Context, form models.EventForm) (models.Event, error) {
	if err := c.validator.Validate(ctx, form); err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	id, err := newContentID("evt_")
	if err != nil {
		return models.Event{}, err
	}
	event := models.Event{
		ID:          id,
		Date:        form.Date,
		Location:    form.Location,
		Title:       form.Title,
		Description: form.Description,
		Tag:         form.Tag,
	}

	events := c.eventRepository.Load(ctx)
	if err = c.eventRepository.Save(ctx, append(events, event)); err != nil {
		return models.Event{}, err
	}

	logger.FromContext(ctx).Info().Str("id", id).Msg("event added")
	return event, nil
}

func (c *contentService) DeleteEvent(ctx context.Context, id string) error {
	events := c.eventRepository.Load(ctx)
	remaining := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.ID != id {
			remaining = append(remaining, event)
		}
	}
	return c.eventRepository.Save(ctx, remaining)
}

func (c *contentService) ListVideos(ctx context.Context) []models.Video {
	return c.videoRepository.Load(ctx)
}

// AddVideo validates the form before touching the upload. A rejected
// upload is not an error: the video is stored without a file.
func (c *contentService) AddVideo(ctx context.Context, form models.VideoForm) (models.Video, error) {
	if err := c.validator.Validate(ctx, form); err != nil {
		return models.Video{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	stored, err := storeUpload(ctx, c.uploads, form.File)
	if err != nil {
		return models.Video{}, err
	}

	id, err := newContentID("vid_")
	if err != nil {
		return models.Video{}, err
	}
	video := models.Video{
		ID:          id,
		Tag:         form.Tag,
		Title:       form.Title,
		Description: form.Description,
		Layout:      models.NormalizeLayout(form.Layout),
		VideoURL:    form.VideoURL,
		File:        stored,
	}

	videos := c.videoRepository.Load(ctx)
	if err = c.videoRepository.Save(ctx, append(videos, video)); err != nil {
		return models.Video{}, err
	}

	logger.FromContext(ctx).Info().Str("id", id).Str("file", stored).Msg("video added")
	return video, nil
}

// DeleteVideo removes the video and its stored file, if any.
func (c *contentService) DeleteVideo(ctx context.Context, id string) error {
	videos := c.videoRepository.Load(ctx)
	remaining := make([]models.Video, 0, len(videos))
	for _, video := range videos {
		if video.ID != id {
			remaining = append(remaining, video)
			continue
		}
		if err := c.uploads.Delete(ctx, video.File); err != nil {
			logger.FromContext(ctx).Err(err).Str("id", id).Msg("error removing video file")
		}
	}
	return c.videoRepository.Save(ctx, remaining)
}

func newContentID(prefix string) (string, error) {
	suffix, err := utils.RandomHex(contentIDBytes)
	if err != nil {
		return "", err
	}
	return prefix + suffix, nil
}

// storeUpload saves upload when present and returns the stored name, or ""
// when there was nothing to store or the file was rejected.
func storeUpload(ctx context.Context, uploads store.UploadStorage, upload *models.Upload) (string, error) {
	if upload == nil || upload.Content == nil {
		return "", nil
	}

	stored, ok, err := uploads.Save(ctx, upload.Filename, upload.Content)
	if err != nil {
		metrics.RecordUpload("failed")
		return "", err
	}
	if !ok {
		metrics.RecordUpload("rejected")
		return "", nil
	}

	metrics.RecordUpload("stored")
	return stored, nil
}
