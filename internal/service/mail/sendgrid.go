package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.sendgrid.com"

// SendGridConfig carries the provider credentials and addressing. An empty
// APIKey disables delivery entirely.
type SendGridConfig struct {
	APIKey     string
	AdminEmail string
	FromEmail  string
	BaseURL    string
	Timeout    time.Duration
}

// SendGrid implements Notifier over the SendGrid v3 mail API.
type SendGrid struct {
	client *resty.Client
	cfg    SendGridConfig
	logger *slog.Logger
}

// NewSendGrid builds the dispatcher. With no API key configured it degrades
// to a no-op that logs a warning and reports failure, so the caller's write
// path keeps working without credentials.
func NewSendGrid(cfg SendGridConfig, logger *slog.Logger) *SendGrid {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetTimeout(cfg.Timeout)

	return &SendGrid{client: client, cfg: cfg, logger: logger}
}

// Disabled reports whether the dispatcher lacks credentials.
func (s *SendGrid) Disabled() bool {
	return s.cfg.APIKey == ""
}

// Notify formats the notice and submits it to the admin recipient. The
// returned boolean is the only delivery signal; errors never escape.
func (s *SendGrid) Notify(ctx context.Context, n Notice) bool {
	if s.Disabled() {
		s.logger.Warn("sendgrid api key not configured, skipping emergency notification")
		return false
	}

	subject := "🚨 PERMINTAAN BANTUAN SEGERA - Ruang Tenang"
	payload := map[string]any{
		"personalizations": []map[string]any{{
			"to": []map[string]string{{"email": s.cfg.AdminEmail}},
		}},
		"from":    map[string]string{"email": s.cfg.FromEmail},
		"subject": subject,
		"content": []map[string]string{{
			"type":  "text/plain",
			"value": formatNotice(n),
		}},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/v3/mail/send")
	if err != nil {
		s.logger.Error("emergency notification dispatch failed", "error", err)
		return false
	}
	if resp.IsError() {
		s.logger.Error("emergency notification rejected by provider",
			"status", resp.StatusCode(), "body", resp.String())
		return false
	}

	return true
}

func formatNotice(n Notice) string {
	name := n.Name
	if name == "" {
		name = "Tidak disebutkan"
	}
	message := n.Message
	if message == "" {
		message = "Tidak ada pesan tambahan"
	}
	at := n.At
	if at.IsZero() {
		at = time.Now()
	}

	return fmt.Sprintf(
		"PERMINTAAN BANTUAN SEGERA\n\nNama: %s\nKontak: %s\nPesan: %s\nWaktu: %s\n\nMohon segera menghubungi individu ini.",
		name, n.Contact, message, at.Format("02/01/2006 15:04:05"))
}
