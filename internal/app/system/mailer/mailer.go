// internal/app/system/mailer/mailer.go

// Package mailer builds and delivers transactional email for contract and
// job lifecycle events.
package mailer

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attachment is one file attached to an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Email is a fully rendered message ready for delivery.
type Email struct {
	To          string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// Sender delivers rendered emails.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// SMTPConfig holds the delivery settings. Port 465 uses implicit TLS;
// every other port upgrades with STARTTLS when the server offers it.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ReplyTo  string
}

// Valid reports whether the config is complete enough to deliver mail.
func (c SMTPConfig) Valid() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// SMTPSender delivers email over SMTP.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender returns a sender for the given config, or an error when the
// required fields are missing.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if !cfg.Valid() {
		return nil, fmt.Errorf("smtp config incomplete: host, username, and password are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = "no-reply@cochranfilms.com"
	}
	return &SMTPSender{cfg: cfg}, nil
}

// Send delivers one email. The context deadline bounds the dial; SMTP
// itself has no mid-session cancellation, so a hung server is cut off by
// the connection deadline instead.
func (s *SMTPSender) Send(ctx context.Context, email Email) error {
	if email.To == "" {
		return fmt.Errorf("email has no recipient")
	}

	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if s.cfg.Port == 465 {
		conn = tls.Client(conn, &tls.Config{ServerName: s.cfg.Host})
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if s.cfg.Port != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(email.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(BuildMessage(s.cfg, email, time.Now())); err != nil {
		w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}
	return client.Quit()
}

// BuildMessage assembles the raw RFC 5322 message, multipart when
// attachments are present.
func BuildMessage(cfg SMTPConfig, email Email, now time.Time) []byte {
	var b strings.Builder

	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	writeHeader(&b, "From", cfg.From)
	writeHeader(&b, "To", email.To)
	if cfg.ReplyTo != "" {
		writeHeader(&b, "Reply-To", cfg.ReplyTo)
	}
	writeHeader(&b, "Subject", mime.QEncoding.Encode("utf-8", email.Subject))
	writeHeader(&b, "Date", now.UTC().Format(time.RFC1123Z))
	writeHeader(&b, "Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), host))
	writeHeader(&b, "MIME-Version", "1.0")

	body := email.HTMLBody
	contentType := `text/html; charset="utf-8"`
	if body == "" {
		body = email.TextBody
		contentType = `text/plain; charset="utf-8"`
	}

	if len(email.Attachments) == 0 {
		writeHeader(&b, "Content-Type", contentType)
		b.WriteString("\r\n")
		b.WriteString(body)
		b.WriteString("\r\n")
		return []byte(b.String())
	}

	boundary := "cf-" + uuid.NewString()
	writeHeader(&b, "Content-Type", fmt.Sprintf(`multipart/mixed; boundary="%s"`, boundary))
	b.WriteString("\r\n")

	b.WriteString("--" + boundary + "\r\n")
	writeHeader(&b, "Content-Type", contentType)
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	for _, att := range email.Attachments {
		ct := att.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		b.WriteString("--" + boundary + "\r\n")
		writeHeader(&b, "Content-Type", ct)
		writeHeader(&b, "Content-Transfer-Encoding", "base64")
		writeHeader(&b, "Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, att.Filename))
		b.WriteString("\r\n")
		b.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(att.Content)))
		b.WriteString("\r\n")
	}
	b.WriteString("--" + boundary + "--\r\n")
	return []byte(b.String())
}

func writeHeader(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\r\n")
}

// wrapBase64 folds encoded content at 76 columns per RFC 2045.
func wrapBase64(s string) string {
	const width = 76
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteString("\r\n")
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
