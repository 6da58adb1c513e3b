package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/insider-one/telert-api/internal/domain"
)

// Provider status values
const (
	StatusConfigured   = "configured"
	StatusUnconfigured = "unconfigured"
)

// SendRecorder receives one call per provider outcome
type SendRecorder interface {
	RecordSend(provider string, ok bool)
}

// NotificationService handles notification business logic
type NotificationService struct {
	notifier domain.Notifier
	logger   *slog.Logger
	recorder SendRecorder
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifier domain.Notifier, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		notifier: notifier,
		logger:   logger,
	}
}

// SetRecorder sets the recorder notified of every provider outcome
func (s *NotificationService) SetRecorder(recorder SendRecorder) {
	s.recorder = recorder
}

// SendRequest represents a request to send a notification
type SendRequest struct {
	Message      string
	Provider     domain.ProviderSelection
	AllProviders bool
}

// StatusReport describes whether any provider is configured
type StatusReport struct {
	Status    string                      `json:"status"`
	Providers []domain.ProviderDescriptor `json:"providers,omitempty"`
	Message   string                      `json:"message"`
}

// ProvidersReport lists providers and the defaults among them
type ProvidersReport struct {
	Providers        []domain.ProviderDescriptor `json:"providers"`
	DefaultProviders []string                    `json:"default_providers"`
}

// Status reports the configured providers with secrets redacted
func (s *NotificationService) Status(ctx context.Context) StatusReport {
	providers := s.notifier.ListProviders()
	if len(providers) == 0 {
		return StatusReport{
			Status:  StatusUnconfigured,
			Message: "No messaging providers configured",
		}
	}

	redacted := domain.RedactProviders(providers)
	return StatusReport{
		Status:    StatusConfigured,
		Providers: redacted,
		Message:   fmt.Sprintf("%d provider(s) configured", len(redacted)),
	}
}

// Providers lists every provider with secrets redacted
func (s *NotificationService) Providers(ctx context.Context) ProvidersReport {
	providers := s.notifier.ListProviders()
	return ProvidersReport{
		Providers:        domain.RedactProviders(providers),
		DefaultProviders: domain.DefaultProviderNames(providers),
	}
}

// IsConfigured reports whether a send could reach any provider
func (s *NotificationService) IsConfigured() bool {
	return s.notifier.IsConfigured()
}

// Send delivers a notification through the notifier. Partial failure is a
// valid outcome, not an error. Callers that must answer "not configured"
// before reading a request check IsConfigured themselves; Send leaves that
// to the notifier, whose ErrNotConfigured is returned unwrapped.
func (s *NotificationService) Send(ctx context.Context, req SendRequest) (*domain.SendOutcome, error) {
	if req.Message == "" {
		return nil, domain.NewValidationError("message", "message is required")
	}

	result, err := s.notifier.Send(ctx, req.Message, req.Provider, req.AllProviders)
	if errors.Is(err, domain.ErrNotConfigured) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("failed to send notification",
			"provider", req.Provider.String(),
			"all_providers", req.AllProviders,
			"error", err,
		)
		return nil, domain.SendError{Err: err}
	}

	if s.recorder != nil {
		for _, o := range result {
			s.recorder.RecordSend(o.Provider, o.OK)
		}
	}

	outcome := domain.NewSendOutcome(result)

	s.logger.Info("notification sent",
		"status", outcome.Status,
		"successful", outcome.Successful,
		"failed", outcome.Failed,
	)

	return &outcome, nil
}
