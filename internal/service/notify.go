package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pena-betica-escocesa/api/internal/model"
)

// NotifyEvent is the payload posted to the board's webhook. The webhook
// target is typically a chat integration, so delivery is best-effort:
// failures are logged, never surfaced to the submitting supporter.
type NotifyEvent struct {
	Kind      string      `json:"kind"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Notify event kinds
const (
	NotifyKindRSVP    = "rsvp"
	NotifyKindContact = "contact"
)

// NotifyService posts board notifications to a configured webhook
type NotifyService struct {
	enabled    bool
	webhookURL string
	client     *http.Client
}

// NotifyServiceConfig holds configuration for the notify service
type NotifyServiceConfig struct {
	Enabled    bool
	WebhookURL string
	Timeout    time.Duration
	HTTPClient *http.Client // optional, overrides Timeout
}

// NewNotifyService creates a new notify service
func NewNotifyService(cfg NotifyServiceConfig) *NotifyService {
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &NotifyService{
		enabled:    cfg.Enabled && cfg.WebhookURL != "",
		webhookURL: cfg.WebhookURL,
		client:     client,
	}
}

// IsEnabled returns whether notifications are enabled
func (s *NotifyService) IsEnabled() bool {
	return s.enabled
}

// NotifyRSVP announces a new confirmation to the board
func (s *NotifyService) NotifyRSVP(ctx context.Context, rsvp *model.RSVP, totalAttendees int) {
	s.send(ctx, &NotifyEvent{
		Kind:  NotifyKindRSVP,
		Title: "Nueva confirmación",
		Body:  fmt.Sprintf("%s ha confirmado %d asistente(s). Total: %d", rsvp.Name, rsvp.Attendees, totalAttendees),
		Data: map[string]interface{}{
			"rsvp_id":           rsvp.ID,
			"attendees":         rsvp.Attendees,
			"total_attendees":   totalAttendees,
			"whatsapp_interest": rsvp.WhatsappInterest,
		},
		Timestamp: time.Now().UTC(),
	})
}

// NotifyContact announces a contact form submission to the board
func (s *NotifyService) NotifyContact(ctx context.Context, sub *model.ContactSubmission) {
	s.send(ctx, &NotifyEvent{
		Kind:  NotifyKindContact,
		Title: "Nuevo mensaje de contacto",
		Body:  fmt.Sprintf("%s: %s", sub.Name, sub.Subject),
		Data: map[string]interface{}{
			"contact_id": sub.ID,
			"type":       sub.Type,
		},
		Timestamp: time.Now().UTC(),
	})
}

func (s *NotifyService) send(ctx context.Context, event *NotifyEvent) {
	if !s.enabled {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("notify: marshal failed", slog.String("error", err.Error()))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		slog.Error("notify: request build failed", slog.String("error", err.Error()))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("notify: webhook post failed",
			slog.String("kind", event.Kind),
			slog.String("error", err.Error()))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		slog.Error("notify: webhook rejected",
			slog.String("kind", event.Kind),
			slog.Int("status", resp.StatusCode))
		return
	}

	slog.Info("notify: webhook delivered", slog.String("kind", event.Kind))
}
