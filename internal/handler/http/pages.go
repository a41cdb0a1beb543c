package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// alert is a one-line notice rendered above a form.
type alert struct {
	Level string
	Text  string
}

type indexView struct {
	SiteName  string
	Events    []models.Event
	Videos    []models.Video
	FormAlert *alert
	Access    accessView
}

// accessView feeds the #acceso section. Admin and User hold the session
// usernames; at most one of them is set.
type accessView struct {
	Alert *alert

	Admin        string
	AdminAlert   *alert
	Applications []models.Application
	SelectedUser string
	Submissions  []models.Submission
	Events       []models.Event
	Videos       []models.Video
	SMTP         models.SMTPSettings

	User   string
	Member models.Application
	Plan   models.Plan
}

type adminView struct {
	SiteName     string
	Alert        *alert
	Applications []models.Application
	Events       []models.Event
	Videos       []models.Video
	SMTP         models.SMTPSettings
}

type loginView struct {
	SiteName string
	Alert    *alert
}

var pageFuncs = template.FuncMap{
	"inc":          func(i int) int { return i + 1 },
	"formatDate":   formatDate,
	"isImage":      hasExtension(store.ImageExtensions),
	"isVideo":      hasExtension(store.VideoExtensions),
	"layoutClass":  layoutClass,
	"eventMeta":    eventMeta,
	"planUserHref": planUserHref,
}

func parsePages() (*template.Template, error) {
	return template.New("pages").Funcs(pageFuncs).ParseFS(templatesFS, "templates/*.html")
}

func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	view := indexView{
		SiteName:  h.siteName,
		Events:    h.services.ContentService.ListEvents(ctx),
		Videos:    h.services.ContentService.ListVideos(ctx),
		FormAlert: formAlert(query),
		Access:    accessView{Alert: accessAlert(query.Get("access"))},
	}

	if admin, ok := h.sessionUser(r, adminSessionCookie, models.RoleAdmin); ok {
		h.fillAdminAccess(r, &view, admin)
	} else if user, ok := h.sessionUser(r, userSessionCookie, models.RoleUser); ok {
		h.fillUserAccess(r, &view, user)
	}

	h.render(w, r, "index", view)
}

func (h *Handler) fillAdminAccess(r *http.Request, view *indexView, admin string) {
	ctx := r.Context()
	query := r.URL.Query()

	apps := h.services.MembershipService.List(ctx)
	selected := query.Get("plan_user")
	if selected == "" && len(apps) > 0 {
		selected = apps[0].Username
	}

	plan := models.DefaultPlan()
	if app := models.FindApplication(apps, selected); app != nil {
		plan = app.Plan.Normalize()
	}

	view.Access.Admin = admin
	view.Access.AdminAlert = adminAlert(query)
	view.Access.Applications = apps
	view.Access.SelectedUser = selected
	view.Access.Plan = plan
	view.Access.Submissions = h.services.SubmissionService.List(ctx)
	view.Access.Events = view.Events
	view.Access.Videos = view.Videos
	view.Access.SMTP = h.services.SettingsService.Settings(ctx).SMTP
}

func (h *Handler) fillUserAccess(r *http.Request, view *indexView, user string) {
	ctx := r.Context()

	view.Access.User = user
	view.Access.Plan = models.DefaultPlan()
	if app, ok := h.services.MembershipService.Find(ctx, user); ok {
		view.Access.Member = app
		view.Access.Plan = app.Plan.Normalize()
	}
	view.Access.Submissions = h.services.SubmissionService.ListFor(ctx, user)
}

// adminPage shows the standalone admin page, or the login page when there
// is no admin session.
func (h *Handler) adminPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := h.sessionUser(r, adminSessionCookie, models.RoleAdmin); !ok {
		h.render(w, r, "login", loginView{
			SiteName: h.siteName,
			Alert:    accessAlert(r.URL.Query().Get("access")),
		})
		return
	}

	h.render(w, r, "admin", adminView{
		SiteName:     h.siteName,
		Alert:        adminAlert(r.URL.Query()),
		Applications: h.services.MembershipService.List(ctx),
		Events:       h.services.ContentService.ListEvents(ctx),
		Videos:       h.services.ContentService.ListVideos(ctx),
		SMTP:         h.services.SettingsService.Settings(ctx).SMTP,
	})
}

// render executes the named page into a buffer so that a template error
// turns into a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, view any) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, view); err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func formAlert(query url.Values) *alert {
	switch status := query.Get("status"); status {
	case "":
		return nil
	case "ok":
		return &alert{Level: "success", Text: "Solicitud recibida. Revisa tu email para confirmar el acceso."}
	case "smtp":
		return &alert{Level: "success", Text: "Solicitud recibida, pero SMTP no está configurado."}
	default:
		text := query.Get("message")
		if text == "" {
			text = "No se pudo enviar la solicitud."
		}
		return &alert{Level: "error", Text: text}
	}
}

var adminMessages = map[string]string{
	"event_added":        "Evento guardado.",
	"event_deleted":      "Evento eliminado.",
	"app_approved":       "Usuario aprobado.",
	"app_deleted":        "Solicitud eliminada.",
	"video_added":        "Vídeo guardado.",
	"video_deleted":      "Vídeo eliminado.",
	"plan_saved":         "Plan de entrenamiento actualizado.",
	"comment_added":      "Comentario enviado.",
	"submission_deleted": "Envío eliminado.",
	"smtp_saved":         "Configuración SMTP actualizada.",
}

// adminAlert reads admin_status, falling back to status as used by the
// standalone admin page.
func adminAlert(query url.Values) *alert {
	status := query.Get("admin_status")
	if status == "" {
		status = query.Get("status")
	}
	if status == "error" {
		return &alert{Level: "error", Text: "No se pudo completar la operación."}
	}
	if text, ok := adminMessages[status]; ok {
		return &alert{Level: "success", Text: text}
	}
	return nil
}

var accessMessages = map[string]alert{
	accessUserOK:        {Level: "success", Text: "Acceso correcto. Bienvenido."},
	accessUserError:     {Level: "error", Text: "Usuario o contraseña incorrectos."},
	accessUserPending:   {Level: "error", Text: "Tu cuenta aún no está activa."},
	accessUserMissing:   {Level: "error", Text: "Completa usuario y contraseña."},
	accessUserLogout:    {Level: "success", Text: "Sesión cerrada."},
	accessUserSubmitOK:  {Level: "success", Text: "Vídeo enviado. Recibirás feedback."},
	accessUserSubmitErr: {Level: "error", Text: "No se pudo enviar el vídeo."},
	accessAdminOK:       {Level: "success", Text: "Sesión admin activa."},
	accessAdminError:    {Level: "error", Text: "Credenciales admin incorrectas."},
	accessAdminLogout:   {Level: "success", Text: "Sesión cerrada."},
}

func accessAlert(status string) *alert {
	if status == "" {
		return nil
	}
	if a, ok := accessMessages[status]; ok {
		return &a
	}
	return &alert{Level: "success", Text: "Acceso actualizado."}
}

func formatDate(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).Format("02-01-2006")
}

func hasExtension(exts []string) func(string) bool {
	return func(name string) bool {
		return slices.Contains(exts, strings.ToLower(filepath.Ext(name)))
	}
}

func layoutClass(layout string) string {
	if l := models.NormalizeLayout(layout); l != "" {
		return " " + l
	}
	return ""
}

// eventMeta renders "date - location" without a dangling separator.
func eventMeta(e models.Event) string {
	return strings.Trim(e.Date+" - "+e.Location, " -")
}

func planUserHref(username string) string {
	return "/?plan_user=" + url.QueryEscape(username) + "#acceso"
}
