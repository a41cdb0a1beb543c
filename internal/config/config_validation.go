package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DataDir == "" || cfg.Storage.UploadDir == "" {
		return fmt.Errorf("%w: data and upload directories are required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: max upload bytes must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ReadTimeout <= 0 ||
		cfg.Server.WriteTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if cfg.App.AdminUsername == "" || cfg.App.AdminPassword == "" {
		return fmt.Errorf("%w: admin credential is required", ErrInvalidAppConfigs)
	}
	if cfg.App.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Notify.SMTPTimeout <= 0 {
		return fmt.Errorf("%w: smtp timeout must be positive", ErrInvalidNotifyConfigs)
	}

	return nil
}
