package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/internal/validators"
	"github.com/MKhiriev/aura-portal/models"
)

type submissionService struct {
	submissionRepository store.SubmissionRepository
	uploads              store.UploadStorage
	validator            validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

func NewSubmissionService(
	submissionRepository store.SubmissionRepository,
	uploads store.UploadStorage,
	validator validators.Validator,
	logger *logger.Logger,
) SubmissionService {
	return &submissionService{
		submissionRepository: submissionRepository,
		uploads:              uploads,
		validator:            validator,
		now:                  time.Now,
		logger:               logger,
	}
}

// Add stores the upload first, then requires a title, a description and
// either a stored file or a video URL. A file stored for a rejected form
// is removed again.
func (s *submissionService) Add(ctx context.Context, user string, form models.SubmissionForm) (models.Submission, error) {
	log := logger.FromContext(ctx)

	stored, err := storeUpload(ctx, s.uploads, form.File)
	if err != nil {
		return models.Submission{}, err
	}

	err = s.validator.Validate(ctx, form)
	if err == nil && stored == "" && form.VideoURL == "" {
		err = ErrNoMedia
	}
	if err != nil {
		if delErr := s.uploads.Delete(ctx, stored); delErr != nil {
			log.Err(delErr).Str("file", stored).Msg("error removing orphan upload")
		}
		return models.Submission{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	id, err := newContentID("sub_")
	if err != nil {
		return models.Submission{}, err
	}
	sub := models.Submission{
		ID:          id,
		Username:    user,
		Title:       form.Title,
		Description: form.Description,
		VideoURL:    form.VideoURL,
		File:        stored,
		CreatedAt:   s.now().Unix(),
		Comments:    []models.Comment{},
	}

	subs := s.submissionRepository.Load(ctx)
	if err = s.submissionRepository.Save(ctx, append(subs, sub)); err != nil {
		return models.Submission{}, err
	}

	log.Info().Str("id", id).Str("user", user).Msg("submission added")
	return sub, nil
}

func (s *submissionService) Comment(ctx context.Context, form models.CommentForm) error {
	if err := s.validator.Validate(ctx, form); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	subs := s.submissionRepository.Load(ctx)
	for i := range subs {
		if subs[i].ID == form.SubmissionID {
			subs[i].Comments = append(subs[i].Comments, models.Comment{
				Text:      form.Text,
				CreatedAt: s.now().Unix(),
			})
			return s.submissionRepository.Save(ctx, subs)
		}
	}
	return ErrSubmissionNotFound
}

// Delete removes the submission and its stored file, if any.
func (s *submissionService) Delete(ctx context.Context, id string) error {
	subs := s.submissionRepository.Load(ctx)
	remaining := make([]models.Submission, 0, len(subs))
	for _, sub := range subs {
		if sub.ID != id {
			remaining = append(remaining, sub)
			continue
		}
		if err := s.uploads.Delete(ctx, sub.File); err != nil {
			logger.FromContext(ctx).Err(err).Str("id", id).Msg("error removing submission file")
		}
	}
	return s.submissionRepository.Save(ctx, remaining)
}

func (s *submissionService) List(ctx context.Context) []models.Submission {
	return s.submissionRepository.Load(ctx)
}

// ListFor returns the submissions whose username equals user exactly.
func (s *submissionService) ListFor(ctx context.Context, user string) []models.Submission {
	var own []models.Submission
	for _, sub := range s.submissionRepository.Load(ctx) {
		if sub.Username == user {
			own = append(own, sub)
		}
	}
	return own
}
