package config

import "time"

// Default values applied to fields that no source has set.
const (
	DefaultHTTPAddress     = ":8000"
	DefaultDataDir         = "data"
	DefaultUploadDir       = "uploads"
	DefaultStaticDir       = "static"
	DefaultMaxUploadBytes  = 50 << 20
	DefaultSessionTTL      = 12 * time.Hour
	DefaultAdminUsername   = "admin"
	DefaultAdminPassword   = "admin"
	DefaultLogLevel        = "info"
	DefaultSiteName        = "Aura Calistenia"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultReadTimeout     = 60 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultSMTPTimeout     = 10 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.AdminUsername, DefaultAdminUsername)
	setDefault(&cfg.App.AdminPassword, DefaultAdminPassword)
	setDefault(&cfg.App.SessionTTL, DefaultSessionTTL)
	setDefault(&cfg.App.LogLevel, DefaultLogLevel)
	setDefault(&cfg.App.SiteName, DefaultSiteName)

	setDefault(&cfg.Storage.DataDir, DefaultDataDir)
	setDefault(&cfg.Storage.UploadDir, DefaultUploadDir)
	setDefault(&cfg.Storage.StaticDir, DefaultStaticDir)
	setDefault(&cfg.Storage.MaxUploadBytes, DefaultMaxUploadBytes)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.ReadTimeout, DefaultReadTimeout)
	setDefault(&cfg.Server.WriteTimeout, DefaultWriteTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)

	setDefault(&cfg.Notify.SMTPTimeout, DefaultSMTPTimeout)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
