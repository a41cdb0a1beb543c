package service

import (
	"context"

	"github.com/MKhiriev/aura-portal/models"
)

// SessionService issues and resolves opaque session tokens.
type SessionService interface {
	Create(ctx context.Context, user string, role models.Role) (string, error)
	Resolve(ctx context.Context, cookieHeader, cookieName string, role models.Role) (string, bool)
	Delete(ctx context.Context, token string) error
}

// AuthService checks credentials and maps them to sessions.
type AuthService interface {
	Login(ctx context.Context, form models.LoginForm) (LoginResult, error)
	AdminLogin(ctx context.Context, form models.LoginForm) (LoginResult, error)
	Logout(ctx context.Context, cookieHeader, cookieName string, role models.Role) error
}

// MembershipService manages membership applications and training plans.
type MembershipService interface {
	Apply(ctx context.Context, form models.ApplicationForm) (NotifyStatus, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) []models.Application
	Find(ctx context.Context, username string) (models.Application, bool)
	UpdatePlan(ctx context.Context, update models.PlanUpdate) error
}

// ContentService manages the public events and video gallery.
type ContentService interface {
	ListEvents(ctx context.Context) []models.Event
	AddEvent(ctx context.Context, form models.EventForm) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListVideos(ctx context.Context) []models.Video
	AddVideo(ctx context.Context, form models.VideoForm) (models.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}

// SubmissionService manages member progress submissions and feedback.
type SubmissionService interface {
	Add(ctx context.Context, user string, form models.SubmissionForm) (models.Submission, error)
	Comment(ctx context.Context, form models.CommentForm) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) []models.Submission
	ListFor(ctx context.Context, user string) []models.Submission
}

// SettingsService reads and updates the site settings document.
type SettingsService interface {
	Settings(ctx context.Context) models.Settings
	UpdateSMTP(ctx context.Context, form models.SMTPForm) error
	EnsureAdmin(ctx context.Context) error
}

// Notifier tells the admin and the applicant about a new application.
type Notifier interface {
	NotifyApplication(ctx context.Context, app models.Application, smtp models.SMTPSettings) NotifyStatus
}
