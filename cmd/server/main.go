package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/crypto"
	"github.com/MKhiriev/aura-portal/internal/handler"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/notify"
	"github.com/MKhiriev/aura-portal/internal/server"
	"github.com/MKhiriev/aura-portal/internal/service"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("aura-portal")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Str("level", cfg.App.LogLevel).Msg("invalid log level")
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	credentials := crypto.NewCredentialService()
	admin := store.AdminSeed{Username: cfg.App.AdminUsername, Password: cfg.App.AdminPassword}
	if err = storages.EnsureDataFiles(ctx, credentials, admin); err != nil {
		log.Fatal().Err(err).Msg("error preparing data files")
	}

	mailer := notify.NewSMTPMailer(cfg.Notify, log)
	services := service.NewServices(storages, mailer, credentials, *cfg, log)
	if err = services.SettingsService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error ensuring admin credential")
	}

	handlers, err := handler.NewHandlers(services, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
