package store

import (
	"context"
	"io"

	"github.com/MKhiriev/aura-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the session table.
type SessionRepository interface {
	// Load returns the stored table, or an empty one when the document is
	// absent or corrupt.
	Load(ctx context.Context) models.SessionTable
	Save(ctx context.Context, table models.SessionTable) error
}

// ApplicationRepository persists membership applications.
type ApplicationRepository interface {
	// Load returns all applications with missing fields filled in and plans
	// normalized. If any record needed fixing, the fixed list is written
	// back once.
	Load(ctx context.Context) []models.Application
	Save(ctx context.Context, apps []models.Application) error
}

// SubmissionRepository persists member progress submissions.
type SubmissionRepository interface {
	Load(ctx context.Context) []models.Submission
	Save(ctx context.Context, subs []models.Submission) error
}

// EventRepository persists the public event list.
type EventRepository interface {
	Load(ctx context.Context) []models.Event
	Save(ctx context.Context, events []models.Event) error
}

// VideoRepository persists the public video gallery.
type VideoRepository interface {
	Load(ctx context.Context) []models.Video
	Save(ctx context.Context, videos []models.Video) error
}

// SettingsRepository persists the admin credential and SMTP settings.
type SettingsRepository interface {
	Load(ctx context.Context) models.Settings
	Save(ctx context.Context, settings models.Settings) error
}

// UploadStorage stores uploaded media files under generated names.
type UploadStorage interface {
	// Save copies r into a new file named after filename's extension.
	// ok is false (and nothing is kept) when the extension is not allowed
	// or the content exceeds the size limit.
	Save(ctx context.Context, filename string, r io.Reader) (stored string, ok bool, err error)

	// Delete removes a stored file. Missing files are ignored.
	Delete(ctx context.Context, name string) error

	// Dir returns the directory files are stored in.
	Dir() string
}
