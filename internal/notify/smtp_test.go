package notify

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smtpSession is what the fake server saw during one conversation.
type smtpSession struct {
	from string
	rcpt []string
	data string
}

// startFakeSMTP accepts a single connection and speaks just enough SMTP
// for net/smtp without STARTTLS or AUTH.
func startFakeSMTP(t *testing.T) (host string, port int, done <-chan smtpSession) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	out := make(chan smtpSession, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		var sess smtpSession
		r := bufio.NewReader(conn)
		reply := func(line string) { conn.Write([]byte(line + "\r\n")) }

		reply("220 fake ESMTP")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				out <- sess
				return
			}
			line = strings.TrimRight(line, "\r\n")
			cmd := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				reply("250 fake")
			case strings.HasPrefix(cmd, "MAIL FROM:"):
				sess.from = line[len("MAIL FROM:"):]
				reply("250 ok")
			case strings.HasPrefix(cmd, "RCPT TO:"):
				sess.rcpt = append(sess.rcpt, line[len("RCPT TO:"):])
				reply("250 ok")
			case cmd == "DATA":
				reply("354 go ahead")
				var body strings.Builder
				for {
					dl, err := r.ReadString('\n')
					if err != nil {
						out <- sess
						return
					}
					if dl == ".\r\n" {
						break
					}
					body.WriteString(dl)
				}
				sess.data = body.String()
				reply("250 queued")
			case cmd == "QUIT":
				reply("221 bye")
				out <- sess
				return
			default:
				reply("502 not implemented")
			}
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)
	return "127.0.0.1", addr.Port, out
}

func newTestMailer() *SMTPMailer {
	return NewSMTPMailer(config.Notify{SMTPTimeout: 5 * time.Second}, logger.Nop())
}

func TestSMTPMailer_Send(t *testing.T) {
	host, port, done := startFakeSMTP(t)

	settings := models.SMTPSettings{
		Enabled:    true,
		Host:       host,
		Port:       port,
		FromName:   "Aura Calistenia",
		AdminEmail: "coach@example.com",
	}

	err := newTestMailer().Send(context.Background(), settings, "ana@example.com", "Solicitud recibida", "Tu solicitud fue recibida.")
	require.NoError(t, err)

	select {
	case sess := <-done:
		assert.Equal(t, "<coach@example.com>", sess.from)
		assert.Equal(t, []string{"<ana@example.com>"}, sess.rcpt)
		assert.Contains(t, sess.data, "To: ana@example.com\r\n")
		assert.Contains(t, sess.data, `From: "Aura Calistenia" <coach@example.com>`)
		assert.Contains(t, sess.data, "Tu solicitud fue recibida.")
	case <-time.After(5 * time.Second):
		t.Fatal("fake smtp server did not finish")
	}
}

func TestSMTPMailer_SendRequiresRecipient(t *testing.T) {
	err := newTestMailer().Send(context.Background(), models.SMTPSettings{Host: "127.0.0.1"}, "", "s", "b")
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestSMTPMailer_SendDialError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	settings := models.SMTPSettings{Host: "127.0.0.1", Port: port}
	err = newTestMailer().Send(context.Background(), settings, "ana@example.com", "s", "b")
	assert.ErrorIs(t, err, ErrDialing)
}

func TestBuildMessage(t *testing.T) {
	date := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("encodes non-ascii subject and body", func(t *testing.T) {
		settings := models.SMTPSettings{Username: "aura@example.com", FromName: "Aura Calistenia"}
		msg, err := buildMessage(settings, "ana@example.com", "Solicitud recibida - Aura Calistenia", "Línea 1\nTécnica", date)
		require.NoError(t, err)

		text := string(msg)
		assert.Contains(t, text, "Subject: Solicitud recibida - Aura Calistenia\r\n")
		assert.Contains(t, text, "Content-Transfer-Encoding: quoted-printable\r\n")
		assert.Contains(t, text, "L=C3=ADnea 1")
		assert.Contains(t, text, "Date: "+date.Format(time.RFC1123Z))
	})

	t.Run("sender name only without address", func(t *testing.T) {
		msg, err := buildMessage(models.SMTPSettings{}, "ana@example.com", "Nueva solicitud de entreno", "x", date)
		require.NoError(t, err)
		assert.Contains(t, string(msg), "From: Aura Calistenia\r\n")
	})

	t.Run("q-encodes subject with accents", func(t *testing.T) {
		msg, err := buildMessage(models.SMTPSettings{}, "ana@example.com", "Acción", "x", date)
		require.NoError(t, err)
		assert.Contains(t, string(msg), "Subject: =?utf-8?q?Acci=C3=B3n?=\r\n")
	})
}
