package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/metrics"
	"github.com/MKhiriev/aura-portal/internal/notify"
	"github.com/MKhiriev/aura-portal/models"
)

// NotifyStatus is the outcome of notifying about a new application.
type NotifyStatus int

const (
	// NotifyOK means both messages were sent.
	NotifyOK NotifyStatus = iota

	// NotifySkipped means SMTP is disabled or not fully configured.
	NotifySkipped

	// NotifyFailed means sending was attempted and failed.
	NotifyFailed
)

func (s NotifyStatus) String() string {
	switch s {
	case NotifyOK:
		return "sent"
	case NotifySkipped:
		return "skipped"
	default:
		return "failed"
	}
}

const (
	adminSubject = "Nueva solicitud de entreno"
	userSubject  = "Solicitud recibida - Aura Calistenia"
)

type applicationNotifier struct {
	mailer notify.Mailer
	logger *logger.Logger
}

func NewApplicationNotifier(mailer notify.Mailer, logger *logger.Logger) Notifier {
	return &applicationNotifier{mailer: mailer, logger: logger}
}

// NotifyApplication mails the admin first and the applicant second. Any
// delivery error stops the sequence and reports NotifyFailed.
func (n *applicationNotifier) NotifyApplication(ctx context.Context, app models.Application, smtp models.SMTPSettings) NotifyStatus {
	status := n.notify(ctx, app, smtp)
	metrics.RecordNotification(status.String())
	return status
}

func (n *applicationNotifier) notify(ctx context.Context, app models.Application, smtp models.SMTPSettings) NotifyStatus {
	log := logger.FromContext(ctx)

	if !smtp.Enabled {
		log.Debug().Msg("smtp disabled, application notification skipped")
		return NotifySkipped
	}
	if !smtp.Complete() {
		log.Warn().Msg("smtp settings incomplete, application notification skipped")
		return NotifySkipped
	}

	if err := n.mailer.Send(ctx, smtp, smtp.AdminAddress(), adminSubject, adminBody(app)); err != nil {
		log.Err(err).Msg("error sending admin notification")
		return NotifyFailed
	}
	if err := n.mailer.Send(ctx, smtp, app.Email, userSubject, userBody(app)); err != nil {
		log.Err(err).Str("email", app.Email).Msg("error sending applicant confirmation")
		return NotifyFailed
	}

	return NotifyOK
}

func adminBody(app models.Application) string {
	return fmt.Sprintf("Nueva solicitud registrada:\nUsuario: %s\nEmail: %s\nSkill: %s\nObjetivo: %s\n",
		app.Username, app.Email, app.Skill, app.Goal)
}

func userBody(app models.Application) string {
	return fmt.Sprintf("Tu solicitud fue recibida.\n\nSkill: %s\nObjetivo: %s\nTe contactaremos para confirmar tu acceso.",
		app.Skill, app.Goal)
}
