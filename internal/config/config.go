// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the portal
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON (with comments) file.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: admin bootstrap credential,
	// session lifetime and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the JSON documents, uploaded media and
	// static assets.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Notify holds outbound e-mail settings that are not editable from the
	// admin panel.
	Notify Notify `envPrefix:"NOTIFY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AdminUsername is the login written into settings.json when the file is
	// created for the first time. Ignored once settings exist.
	// Env: APP_ADMIN_USERNAME
	AdminUsername string `env:"ADMIN_USERNAME"`

	// AdminPassword is the bootstrap admin password, hashed on first start.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// SessionTTL is how long a login session stays valid (e.g. "12h").
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SiteName is rendered in page titles.
	// Env: APP_SITE_NAME
	SiteName string `env:"SITE_NAME"`
}

// Storage groups the file-system locations used by the application.
type Storage struct {
	// DataDir holds the JSON documents (events, videos, applications,
	// submissions, sessions, settings).
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// UploadDir holds user and admin uploaded media.
	// Env: STORAGE_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// StaticDir is served for any GET path without a dedicated route.
	// Env: STORAGE_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// MaxUploadBytes caps the size of a single stored upload.
	// Env: STORAGE_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the handler context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadTimeout bounds reading the whole request, body included.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing the response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a termination signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// SecureCookies adds the Secure attribute to session cookies. Enable it
	// when the portal is served over HTTPS.
	// Env: SERVER_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`
}

// Notify holds settings for the SMTP collaborator.
type Notify struct {
	// SMTPTimeout bounds dialing and the whole SMTP conversation.
	// Env: NOTIFY_SMTP_TIMEOUT
	SMTPTimeout time.Duration `env:"SMTP_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left unset by every source receive their defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
