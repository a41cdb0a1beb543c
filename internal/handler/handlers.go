package handler

import (
	"fmt"

	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/handler/http"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/service"
	"github.com/MKhiriev/aura-portal/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
