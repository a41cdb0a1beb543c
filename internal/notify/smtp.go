// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify sends outgoing e-mail over SMTP.
package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/models"
)

// SMTPMailer opens one connection per message. The whole exchange,
// connecting included, is bounded by timeout.
type SMTPMailer struct {
	timeout time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

func NewSMTPMailer(cfg config.Notify, logger *logger.Logger) *SMTPMailer {
	logger.Debug().Dur("timeout", cfg.SMTPTimeout).Msg("creating smtp mailer")
	return &SMTPMailer{
		timeout: cfg.SMTPTimeout,
		now:     time.Now,
		logger:  logger,
	}
}

// Send delivers one message to "to". STARTTLS is mandatory when
// settings.UseTLS is set; AUTH PLAIN is used only when both username and
// password are configured. A zero port means 587.
func (m *SMTPMailer) Send(ctx context.Context, settings models.SMTPSettings, to, subject, body string) error {
	log := logger.FromContext(ctx)

	if to == "" {
		return ErrNoRecipient
	}

	port := settings.Port
	if port == 0 {
		port = models.DefaultSMTPPort
	}
	addr := net.JoinHostPort(settings.Host, strconv.Itoa(port))

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	dialer := net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDialing, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, settings.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: %w", ErrDialing, err)
	}
	defer client.Close()

	if settings.UseTLS {
		if err = client.StartTLS(&tls.Config{ServerName: settings.Host}); err != nil {
			return fmt.Errorf("%w: %w", ErrStartTLS, err)
		}
	}

	if settings.Username != "" && settings.Password != "" {
		auth := smtp.PlainAuth("", settings.Username, settings.Password, settings.Host)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("%w: %w", ErrAuthenticate, err)
		}
	}

	msg, err := buildMessage(settings, to, subject, body, m.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	if err = client.Mail(settings.SenderAddress()); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	if _, err = w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	if err = client.Quit(); err != nil {
		log.Warn().Err(err).Msg("smtp quit failed after delivery")
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

// buildMessage renders an RFC 5322 message with a UTF-8 quoted-printable
// text body.
func buildMessage(settings models.SMTPSettings, to, subject, body string, date time.Time) ([]byte, error) {
	fromName := settings.FromName
	if fromName == "" {
		fromName = models.DefaultFromName
	}

	from := mime.QEncoding.Encode("utf-8", fromName)
	if addr := settings.SenderAddress(); addr != "" {
		from = (&mail.Address{Name: fromName, Address: addr}).String()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", date.Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(body)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("\r\n")

	return buf.Bytes(), nil
}
