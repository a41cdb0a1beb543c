package notify

import (
	"context"

	"github.com/MKhiriev/aura-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers a single plain-text message through the SMTP server
// described by settings.
type Mailer interface {
	Send(ctx context.Context, settings models.SMTPSettings, to, subject, body string) error
}
