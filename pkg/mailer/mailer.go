// Package mailer is the outbound email collaborator. Delivery is
// fire-and-forget: callers log failures and never block or reverse the
// triggering action on them.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Template kinds understood by the mail provider.
const (
	TemplateVerificationCode = "verification_code"
	TemplateWelcome          = "welcome"
)

// Mailer sends a templated message to a single address.
type Mailer interface {
	Send(ctx context.Context, to, templateKind string, payload map[string]string) error
}

// Config holds the HTTP mail provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	FromAddress string
	Timeout     time.Duration
}

type httpMailer struct {
	cfg    Config
	client *http.Client
}

// New returns a Mailer backed by an HTTP JSON mail API.
func New(cfg Config) Mailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &httpMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	To       string            `json:"to"`
	From     string            `json:"from"`
	Template string            `json:"template"`
	Payload  map[string]string `json:"payload,omitempty"`
}

func (m *httpMailer) Send(ctx context.Context, to, templateKind string, payload map[string]string) error {
	body, err := json.Marshal(sendRequest{
		To:       to,
		From:     m.cfg.FromAddress,
		Template: templateKind,
		Payload:  payload,
	})
	if err != nil {
		return fmt.Errorf("marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}
	return nil
}

// Noop is a Mailer that silently drops every message. Used in development
// when no mail provider is configured.
type Noop struct{}

func (Noop) Send(ctx context.Context, to, templateKind string, payload map[string]string) error {
	return nil
}
