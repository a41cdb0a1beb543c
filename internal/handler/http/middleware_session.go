package http

import (
	"net/http"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/utils"
	"github.com/MKhiriev/aura-portal/models"
)

// requireAdmin answers 403 unless the request carries a live admin session.
// The session user is stored in the request context.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return h.requireSession(adminSessionCookie, models.RoleAdmin, next)
}

// requireUser is requireAdmin for member sessions.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return h.requireSession(userSessionCookie, models.RoleUser, next)
}

func (h *Handler) requireSession(cookieName string, role models.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.services.SessionService.Resolve(r.Context(), cookieHeader(r), cookieName, role)
		if !ok {
			logger.FromRequest(r).Info().Str("role", role.String()).Msg("no session, access denied")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSessionUser(r.Context(), user)))
	})
}

// sessionUser resolves the optional session of role without rejecting the
// request. Pages use it to pick what to render.
func (h *Handler) sessionUser(r *http.Request, cookieName string, role models.Role) (string, bool) {
	return h.services.SessionService.Resolve(r.Context(), cookieHeader(r), cookieName, role)
}
