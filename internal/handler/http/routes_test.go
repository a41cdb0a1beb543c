package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/aura-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIndexPage_Anonymous(t *testing.T) {
	p := newTestPortal(t)

	rec := p.get("/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Calisthenics Cup 2026")
	assert.Contains(t, body, "Colonia, Alemania")
	assert.Contains(t, body, "Acceso único")
	assert.NotContains(t, body, "Panel activo")
}

func TestIndexPage_Alerts(t *testing.T) {
	p := newTestPortal(t)

	tests := []struct {
		path string
		want string
	}{
		{"/?status=ok", "Solicitud recibida. Revisa tu email para confirmar el acceso."},
		{"/?status=smtp", "Solicitud recibida, pero SMTP no está configurado."},
		{"/?status=error", "No se pudo enviar la solicitud."},
		{"/?status=error&message=Email+ya+registrado", "Email ya registrado"},
		{"/?access=user_pending", "Tu cuenta aún no está activa."},
		{"/?access=whatever", "Acceso actualizado."},
		{"/index.html?access=admin_error", "Credenciales admin incorrectas."},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := p.get(tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestApply_Redirects(t *testing.T) {
	p := newTestPortal(t)

	rec := p.apply("ana", "ana@example.com")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?status=smtp", rec.Header().Get("Location"))

	rec = p.apply("ANA", "other@example.com")
	assert.Equal(t, "/?status=error&message=Usuario+ya+registrado", rec.Header().Get("Location"))

	rec = p.apply("bea", "Ana@Example.com")
	assert.Equal(t, "/?status=error&message=Email+ya+registrado", rec.Header().Get("Location"))

	rec = p.post("/apply", url.Values{"username": {"carla"}, "password": {"x"}})
	assert.Equal(t, "/?status=error&message=Faltan+campos+obligatorios", rec.Header().Get("Location"))

	apps := p.storages.ApplicationRepository.Load(context.Background())
	require.Len(t, apps, 1)
	assert.False(t, apps[0].Approved)
}

func TestApply_WithMailConfigured(t *testing.T) {
	p := newTestPortal(t)
	admin := p.login(t, "admin", "admin")

	rec := p.post("/admin/settings", url.Values{
		"smtp_host":    {"smtp.example.com"},
		"smtp_port":    {"2525"},
		"smtp_user":    {"coach@example.com"},
		"smtp_pass":    {"app-password"},
		"smtp_enabled": {"on"},
	}, admin)
	require.Equal(t, "/?admin_status=smtp_saved#acceso", rec.Header().Get("Location"))

	settings := p.storages.SettingsRepository.Load(context.Background()).SMTP
	assert.Equal(t, 2525, settings.Port)
	assert.True(t, settings.Enabled)
	assert.False(t, settings.UseTLS)

	p.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), "coach@example.com", gomock.Any(), gomock.Any()).Return(nil)
	p.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), "ana@example.com", gomock.Any(), gomock.Any()).Return(nil)
	rec = p.apply("ana", "ana@example.com")
	assert.Equal(t, "/?status=ok", rec.Header().Get("Location"))

	p.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	rec = p.apply("bea", "bea@example.com")
	assert.Equal(t, "/?status=error&message=Error+enviando+email", rec.Header().Get("Location"))

	// the record survives the failed notification
	assert.Len(t, p.storages.ApplicationRepository.Load(context.Background()), 2)
}

func TestMembershipFlow(t *testing.T) {
	p := newTestPortal(t)

	p.apply("ana", "ana@example.com")

	rec := p.post("/login", url.Values{"username": {"ana"}, "password": {"secret"}})
	assert.Equal(t, "/?access=user_pending#acceso", rec.Header().Get("Location"))
	assert.Nil(t, cookieByName(rec, userSessionCookie))

	admin := p.login(t, "admin", "admin")
	assert.Equal(t, adminSessionCookie, admin.Name)
	assert.True(t, admin.HttpOnly)
	assert.Equal(t, "/", admin.Path)
	assert.Equal(t, http.SameSiteLaxMode, admin.SameSite)

	rec = p.post("/admin/applications/approve", url.Values{"id": {p.applicationID(t, "ana")}}, admin)
	assert.Equal(t, "/?admin_status=app_approved#acceso", rec.Header().Get("Location"))

	rec = p.post("/login", url.Values{"username": {"ana"}, "password": {"wrong"}})
	assert.Equal(t, "/?access=user_error#acceso", rec.Header().Get("Location"))

	rec = p.post("/login", url.Values{"username": {"ana"}, "password": {"secret"}})
	assert.Equal(t, "/?access=user_ok#acceso", rec.Header().Get("Location"))
	user := cookieByName(rec, userSessionCookie)
	require.NotNil(t, user)

	rec = p.get("/", user)
	body := rec.Body.String()
	assert.Contains(t, body, "Bienvenido, ana")
	assert.Contains(t, body, "Semana 01 - Base y técnica")
	assert.Contains(t, body, "Aún no tienes envíos.")

	rec = p.post("/logout", nil, user)
	assert.Equal(t, "/?access=user_logout#acceso", rec.Header().Get("Location"))
	cleared := cookieByName(rec, userSessionCookie)
	require.NotNil(t, cleared)
	assert.Equal(t, "deleted", cleared.Value)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")

	rec = p.get("/", user)
	assert.Contains(t, rec.Body.String(), "Acceso único")
}

func TestLogin_MissingAndAdminErrors(t *testing.T) {
	p := newTestPortal(t)

	rec := p.post("/login", url.Values{"username": {"  "}, "password": {"x"}})
	assert.Equal(t, "/?access=user_missing#acceso", rec.Header().Get("Location"))

	rec = p.post("/login", url.Values{"username": {"admin"}, "password": {"nope"}})
	assert.Equal(t, "/?access=admin_error#acceso", rec.Header().Get("Location"))

	rec = p.post("/admin/login", url.Values{"username": {"root"}, "password": {"admin"}})
	assert.Equal(t, "/?access=admin_error#acceso", rec.Header().Get("Location"))

	rec = p.post("/admin/login", url.Values{"username": {"admin"}, "password": {"admin"}})
	assert.Equal(t, "/?access=admin_ok#acceso", rec.Header().Get("Location"))
	assert.NotNil(t, cookieByName(rec, adminSessionCookie))
}

func TestAdminLogout(t *testing.T) {
	p := newTestPortal(t)
	admin := p.login(t, "admin", "admin")

	rec := p.post("/admin/logout", nil, admin)
	assert.Equal(t, "/?access=admin_logout#acceso", rec.Header().Get("Location"))

	rec = p.post("/admin/events/delete", url.Values{"id": {"evt_1"}}, admin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProtectedRoutes_Forbidden(t *testing.T) {
	p := newTestPortal(t)
	p.apply("ana", "ana@example.com")
	admin := p.login(t, "admin", "admin")
	p.post("/admin/applications/approve", url.Values{"id": {p.applicationID(t, "ana")}}, admin)
	user := p.login(t, "ana", "secret")

	paths := []string{
		"/admin/events/add",
		"/admin/events/delete",
		"/admin/videos/add",
		"/admin/videos/delete",
		"/admin/settings",
		"/admin/plan/update",
		"/admin/applications/approve",
		"/admin/applications/delete",
		"/admin/submissions/comment",
		"/admin/submissions/delete",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusForbidden, p.post(path, nil).Code)
			// a member session is not an admin session
			assert.Equal(t, http.StatusForbidden, p.post(path, nil, user).Code)
		})
	}

	assert.Equal(t, http.StatusForbidden, p.post("/user/submissions/add", nil).Code)
	assert.Equal(t, http.StatusForbidden, p.post("/user/submissions/add", nil, admin).Code)
}

func TestUnknownRoutes(t *testing.T) {
	p := newTestPortal(t)

	assert.Equal(t, http.StatusNotFound, p.post("/nope", nil).Code)
	assert.Equal(t, http.StatusNotFound, p.post("/", nil).Code)
	assert.Equal(t, http.StatusNotFound, p.do(httptest.NewRequest(http.MethodPut, "/apply", nil)).Code)
	assert.Equal(t, http.StatusNotFound, p.get("/login").Code)
	assert.Equal(t, http.StatusNotFound, p.get("/data/settings.json").Code)
}

func TestAdminPage(t *testing.T) {
	p := newTestPortal(t)

	rec := p.get("/admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/admin/login"`)

	admin := p.login(t, "admin", "admin")
	for _, path := range []string{"/admin", "/admin/"} {
		rec = p.get(path+"?status=event_added", admin)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Panel de administración")
		assert.Contains(t, rec.Body.String(), "Evento guardado.")
	}

	rec = p.get("/admin.html")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestAdminRedirect_FollowsReferer(t *testing.T) {
	p := newTestPortal(t)
	admin := p.login(t, "admin", "admin")
	form := url.Values{
		"title":       {"Open de Sevilla"},
		"date":        {"10 MAY 2026"},
		"location":    {"Sevilla"},
		"description": {"Freestyle."},
		"tag":         {"Nacional"},
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/events/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "http://localhost:8000/admin")
	req.AddCookie(admin)
	rec := p.do(req)
	assert.Equal(t, "/admin?status=event_added", rec.Header().Get("Location"))

	rec = p.post("/admin/events/add", url.Values{"title": {"incomplete"}}, admin)
	assert.Equal(t, "/?admin_status=error#acceso", rec.Header().Get("Location"))

	events := p.storages.EventRepository.Load(context.Background())
	assert.Equal(t, "Open de Sevilla", events[len(events)-1].Title)
	assert.Contains(t, p.get("/").Body.String(), "10 MAY 2026 - Sevilla")
}

func TestPlanUpdate(t *testing.T) {
	p := newTestPortal(t)
	p.apply("ana maria", "ana@example.com")
	admin := p.login(t, "admin", "admin")

	rec := p.post("/admin/plan/update", url.Values{
		"username":   {"ana maria"},
		"plan_title": {"Plan muscle up"},
		"week1":      {"Dominadas 5x5\n\nFondos 4x8\r\n"},
	}, admin)
	assert.Equal(t, "/?admin_status=plan_saved&plan_user=ana+maria#acceso", rec.Header().Get("Location"))

	app := models.FindApplication(p.storages.ApplicationRepository.Load(context.Background()), "ana maria")
	require.NotNil(t, app)
	assert.Equal(t, "Plan muscle up", app.Plan.Title)
	assert.Equal(t, []string{"Dominadas 5x5", "Fondos 4x8"}, app.Plan.Weeks[0].Days[:2])
	assert.Len(t, app.Plan.Weeks[0].Days, models.PlanDays)

	rec = p.get("/?admin_status=plan_saved&plan_user=ana+maria", admin)
	assert.Contains(t, rec.Body.String(), `value="Plan muscle up"`)
	assert.Contains(t, rec.Body.String(), "Plan de entrenamiento actualizado.")

	rec = p.post("/admin/plan/update", url.Values{"username": {"ghost"}}, admin)
	assert.Equal(t, "/?admin_status=error#acceso", rec.Header().Get("Location"))
}

func TestSubmissionFlow(t *testing.T) {
	p := newTestPortal(t)
	p.apply("ana", "ana@example.com")
	admin := p.login(t, "admin", "admin")
	p.post("/admin/applications/approve", url.Values{"id": {p.applicationID(t, "ana")}}, admin)
	user := p.login(t, "ana", "secret")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Primera dominada"))
	require.NoError(t, mw.WriteField("description", "Semana 4"))
	part, err := mw.CreateFormFile("video_file", "clip.MP4")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a video"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/user/submissions/add", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(user)
	rec := p.do(req)
	require.Equal(t, "/?access=user_submit_ok#acceso", rec.Header().Get("Location"))

	subs := p.storages.SubmissionRepository.Load(context.Background())
	require.Len(t, subs, 1)
	assert.Equal(t, "ana", subs[0].Username)
	require.NotEmpty(t, subs[0].File)

	rec = p.get("/uploads/"+subs[0].File, user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "not really a video", rec.Body.String())

	assert.Contains(t, p.get("/", user).Body.String(), `src="/uploads/`+subs[0].File+`"`)

	rec = p.post("/user/submissions/add", url.Values{"title": {"sin vídeo"}, "description": {"x"}}, user)
	assert.Equal(t, "/?access=user_submit_error#acceso", rec.Header().Get("Location"))

	rec = p.post("/admin/submissions/comment", url.Values{"id": {subs[0].ID}, "comment": {"Baja más lento"}}, admin)
	assert.Equal(t, "/?admin_status=comment_added#acceso", rec.Header().Get("Location"))
	assert.Contains(t, p.get("/", user).Body.String(), "Baja más lento")

	rec = p.post("/admin/submissions/delete", url.Values{"id": {subs[0].ID}}, admin)
	assert.Equal(t, "/?admin_status=submission_deleted#acceso", rec.Header().Get("Location"))
	assert.Equal(t, http.StatusNotFound, p.get("/uploads/"+subs[0].File).Code)
}

func TestVideoAdd_Multipart(t *testing.T) {
	p := newTestPortal(t)
	admin := p.login(t, "admin", "admin")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Planche"))
	require.NoError(t, mw.WriteField("tag", "Estáticos"))
	require.NoError(t, mw.WriteField("description", "Full planche."))
	require.NoError(t, mw.WriteField("layout", "wide"))
	part, err := mw.CreateFormFile("video_file", "planche.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/videos/add", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(admin)
	rec := p.do(req)
	require.Equal(t, "/?admin_status=video_added#acceso", rec.Header().Get("Location"))

	videos := p.storages.VideoRepository.Load(context.Background())
	added := videos[len(videos)-1]
	assert.Equal(t, "wide", added.Layout)

	page := p.get("/").Body.String()
	assert.Contains(t, page, `video-card wide`)
	assert.Contains(t, page, `<img src="/uploads/`+added.File+`" alt="Planche">`)

	rec = p.post("/admin/videos/delete", url.Values{"id": {added.ID}}, admin)
	assert.Equal(t, "/?admin_status=video_deleted#acceso", rec.Header().Get("Location"))
	_, err = os.Stat(filepath.Join(p.cfg.Storage.UploadDir, added.File))
	assert.True(t, os.IsNotExist(err))
}

func TestStaticFiles(t *testing.T) {
	p := newTestPortal(t)
	require.NoError(t, os.MkdirAll(p.cfg.Storage.StaticDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(p.cfg.Storage.StaticDir, "styles.css"), []byte("body{}"), 0o644))

	rec := p.get("/styles.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, p.get("/missing.css").Code)
	assert.Equal(t, http.StatusNotFound, p.get("/uploads/").Code)
}

func TestHealthz(t *testing.T) {
	p := newTestPortal(t)

	rec := p.get("/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var got healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, healthResponse{Status: "ok", Version: "v1.2.3", Commit: "abc123"}, got)
}

func TestMetricsEndpoint(t *testing.T) {
	p := newTestPortal(t)
	p.get("/healthz")

	rec := p.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `aura_http_requests_total{method="GET",route="/healthz",status="200"}`)
}
