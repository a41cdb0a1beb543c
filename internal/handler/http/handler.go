package http

import (
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/service"
	"github.com/MKhiriev/aura-portal/internal/utils"
	"github.com/MKhiriev/aura-portal/models"
)

const (
	adminSessionCookie = "aura_admin_session"
	userSessionCookie  = "aura_user_session"
)

type Handler struct {
	services *service.Services
	pages    *template.Template
	traceIDs *utils.UUIDGenerator

	siteName       string
	staticDir      string
	uploadDir      string
	maxUploadBytes int64
	secureCookies  bool
	requestTimeout time.Duration
	buildInfo      models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("error parsing page templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		pages:          pages,
		traceIDs:       utils.NewUUIDGenerator(),
		siteName:       cfg.App.SiteName,
		staticDir:      cfg.Storage.StaticDir,
		uploadDir:      cfg.Storage.UploadDir,
		maxUploadBytes: cfg.Storage.MaxUploadBytes,
		secureCookies:  cfg.Server.SecureCookies,
		requestTimeout: cfg.Server.RequestTimeout,
		buildInfo:      buildInfo,
		logger:         logger,
	}, nil
}
