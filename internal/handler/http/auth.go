package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/metrics"
	"github.com/MKhiriev/aura-portal/internal/service"
	"github.com/MKhiriev/aura-portal/models"
)

type loginFunc func(ctx context.Context, form models.LoginForm) (service.LoginResult, error)

// login is the shared login card: the admin username opens an admin
// session, anybody else must be an approved member.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.doLogin(w, r, h.services.AuthService.Login, accessUserError)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	h.doLogin(w, r, h.services.AuthService.AdminLogin, accessAdminError)
}

func (h *Handler) doLogin(w http.ResponseWriter, r *http.Request, authenticate loginFunc, fallback string) {
	log := logger.FromRequest(r)

	if err := h.parseForm(w, r); err != nil {
		log.Err(err).Msg("invalid login form")
		metrics.RecordLogin(fallback)
		accessRedirect(w, r, fallback)
		return
	}

	result, err := authenticate(r.Context(), loginForm(r))
	if err != nil {
		status := statusFromError(err, loginStatusMap, fallback)
		log.Info().Err(err).Str("status", status).Msg("login rejected")
		metrics.RecordLogin(status)
		accessRedirect(w, r, status)
		return
	}

	status, cookieName := accessUserOK, userSessionCookie
	if result.Role == models.RoleAdmin {
		status, cookieName = accessAdminOK, adminSessionCookie
	}

	h.setSessionCookie(w, cookieName, result.Token)
	metrics.RecordLogin(status)
	log.Info().Str("user", result.User).Str("role", result.Role.String()).Msg("logged in")
	accessRedirect(w, r, status)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.doLogout(w, r, userSessionCookie, models.RoleUser, accessUserLogout)
}

func (h *Handler) adminLogout(w http.ResponseWriter, r *http.Request) {
	h.doLogout(w, r, adminSessionCookie, models.RoleAdmin, accessAdminLogout)
}

// doLogout always clears the cookie; the stored session is removed only
// when it belongs to role.
func (h *Handler) doLogout(w http.ResponseWriter, r *http.Request, cookieName string, role models.Role, status string) {
	if err := h.services.AuthService.Logout(r.Context(), cookieHeader(r), cookieName, role); err != nil {
		logger.FromRequest(r).Err(err).Msg("error deleting session")
	}

	h.clearSessionCookie(w, cookieName)
	accessRedirect(w, r, status)
}
