package http

import (
	"net/http"
	"net/url"
	"strings"
)

func (h *Handler) setSessionCookie(w http.ResponseWriter, name, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie overwrites name with "deleted" and Max-Age=0.
func (h *Handler) clearSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "deleted",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// cookieHeader joins every Cookie header of r, as HTTP/2 clients may split
// cookies over several header lines.
func cookieHeader(r *http.Request) string {
	return strings.Join(r.Header.Values("Cookie"), "; ")
}

func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func accessRedirect(w http.ResponseWriter, r *http.Request, status string) {
	redirect(w, r, "/?access="+status+"#acceso")
}

// adminRedirect returns to the admin page when the form was posted from it,
// otherwise to the admin panel on the landing page.
func adminRedirect(w http.ResponseWriter, r *http.Request, status string) {
	if strings.Contains(r.Referer(), "/admin") {
		redirect(w, r, "/admin?status="+url.QueryEscape(status))
		return
	}
	redirect(w, r, "/?admin_status="+url.QueryEscape(status)+"#acceso")
}
