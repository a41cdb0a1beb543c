// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// DefaultFromName is the sender display name used when none is set.
	DefaultFromName = "Aura Calistenia"

	// DefaultSMTPPort is the submission port used when none is set.
	DefaultSMTPPort = 587
)

// Settings is the site settings document: the admin credential and the
// outgoing mail configuration.
type Settings struct {
	Admin Credential   `json:"admin"`
	SMTP  SMTPSettings `json:"smtp"`
}

// SMTPSettings configures new-application notifications.
type SMTPSettings struct {
	Enabled    bool   `json:"enabled"`
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	FromName   string `json:"from_name"`
	AdminEmail string `json:"admin_email"`
	UseTLS     bool   `json:"use_tls"`
}

// DefaultSMTPSettings returns the disabled configuration written on first
// start.
func DefaultSMTPSettings() SMTPSettings {
	return SMTPSettings{
		Port:     DefaultSMTPPort,
		FromName: DefaultFromName,
		UseTLS:   true,
	}
}

// Complete reports whether host, username and password are all set.
func (s SMTPSettings) Complete() bool {
	return s.Host != "" && s.Username != "" && s.Password != ""
}

// AdminAddress returns the mailbox that receives admin notices.
func (s SMTPSettings) AdminAddress() string {
	if s.AdminEmail != "" {
		return s.AdminEmail
	}
	return s.Username
}

// SenderAddress returns the envelope sender mailbox, possibly empty.
func (s SMTPSettings) SenderAddress() string {
	if s.Username != "" {
		return s.Username
	}
	return s.AdminEmail
}
