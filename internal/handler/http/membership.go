package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/service"
)

// apply stores a membership request and reports how the notification went:
// status=ok when mails were sent, status=smtp when mail is not set up and
// status=error with a message otherwise.
func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.parseForm(w, r); err != nil {
		log.Err(err).Msg("invalid application form")
		redirect(w, r, "/?status=error")
		return
	}

	notified, err := h.services.MembershipService.Apply(r.Context(), applicationForm(r))
	if err != nil {
		log.Info().Err(err).Msg("application rejected")
		message := statusFromError(err, applyMessageMap, "")
		if message == "" {
			redirect(w, r, "/?status=error")
			return
		}
		redirect(w, r, "/?status=error&message="+url.QueryEscape(message))
		return
	}

	switch notified {
	case service.NotifyOK:
		redirect(w, r, "/?status=ok")
	case service.NotifySkipped:
		redirect(w, r, "/?status=smtp")
	default:
		redirect(w, r, "/?status=error&message="+url.QueryEscape(applyNotifyFailedMessage))
	}
}

func (h *Handler) approveApplication(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "app_approved", func(r *http.Request) error {
		return h.services.MembershipService.Approve(r.Context(), formValue(r, "id"))
	})
}

func (h *Handler) deleteApplication(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "app_deleted", func(r *http.Request) error {
		return h.services.MembershipService.Delete(r.Context(), formValue(r, "id"))
	})
}

// updatePlan always lands back on the plan editor of the edited member.
func (h *Handler) updatePlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.parseForm(w, r); err != nil {
		log.Err(err).Msg("invalid plan form")
		adminRedirect(w, r, "error")
		return
	}

	update := planUpdate(r)
	if err := h.services.MembershipService.UpdatePlan(r.Context(), update); err != nil {
		log.Info().Err(err).Str("username", update.Username).Msg("plan not updated")
		adminRedirect(w, r, "error")
		return
	}

	redirect(w, r, "/?admin_status=plan_saved&plan_user="+url.QueryEscape(update.Username)+"#acceso")
}

// adminAction parses the form, runs action and redirects with okStatus or
// "error".
func (h *Handler) adminAction(w http.ResponseWriter, r *http.Request, okStatus string, action func(r *http.Request) error) {
	log := logger.FromRequest(r)

	if err := h.parseForm(w, r); err != nil {
		log.Err(err).Msg("invalid admin form")
		adminRedirect(w, r, "error")
		return
	}

	if err := action(r); err != nil {
		log.Info().Err(err).Str("path", r.URL.Path).Msg("admin action failed")
		adminRedirect(w, r, "error")
		return
	}

	adminRedirect(w, r, okStatus)
}
