package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/crypto"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/mock"
	"github.com/MKhiriev/aura-portal/internal/service"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testPortal is the full router over real services and temp storages.
type testPortal struct {
	router   *chi.Mux
	handler  *Handler
	storages *store.Storages
	mailer   *mock.MockMailer
	cfg      config.StructuredConfig
}

func newTestPortal(t *testing.T) *testPortal {
	t.Helper()

	root := t.TempDir()
	cfg := config.StructuredConfig{
		App: config.App{
			AdminUsername: "admin",
			AdminPassword: "admin",
			SessionTTL:    time.Hour,
			SiteName:      "Aura Calistenia",
		},
		Storage: config.Storage{
			DataDir:        filepath.Join(root, "data"),
			UploadDir:      filepath.Join(root, "uploads"),
			StaticDir:      filepath.Join(root, "static"),
			MaxUploadBytes: 1 << 20,
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}

	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	credentials := crypto.NewCredentialService()
	err = storages.EnsureDataFiles(context.Background(), credentials, store.AdminSeed{Username: "admin", Password: "admin"})
	require.NoError(t, err)

	mailer := mock.NewMockMailer(gomock.NewController(t))
	services := service.NewServices(storages, mailer, credentials, cfg, logger.Nop())

	h, err := NewHandler(services, cfg, models.NewAppBuildInfo("v1.2.3", "", "abc123"), logger.Nop())
	require.NoError(t, err)

	return &testPortal{
		router:   h.Init(),
		handler:  h,
		storages: storages,
		mailer:   mailer,
		cfg:      cfg,
	}
}

func (p *testPortal) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	p.router.ServeHTTP(rec, req)
	return rec
}

func (p *testPortal) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return p.do(req)
}

func (p *testPortal) post(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return p.do(req)
}

// login posts the shared login form and returns the session cookie it set.
func (p *testPortal) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec := p.post("/login", url.Values{"username": {username}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == adminSessionCookie || c.Name == userSessionCookie {
			return c
		}
	}
	t.Fatalf("no session cookie set, location %q", rec.Header().Get("Location"))
	return nil
}

func (p *testPortal) apply(username, email string) *httptest.ResponseRecorder {
	return p.post("/apply", url.Values{
		"username": {username},
		"password": {"secret"},
		"email":    {email},
		"skill":    {"dominadas"},
		"level":    {"Principiante"},
		"goal":     {"primera dominada"},
	})
}

// applicationID returns the id of username's application.
func (p *testPortal) applicationID(t *testing.T, username string) string {
	t.Helper()

	app := models.FindApplication(p.storages.ApplicationRepository.Load(context.Background()), username)
	require.NotNil(t, app)
	return app.ID
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
