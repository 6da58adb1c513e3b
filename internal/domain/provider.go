package domain

import (
	"context"
)

// ProviderDescriptor describes a configured messaging provider
type ProviderDescriptor struct {
	Name      string         `json:"name"`
	IsDefault bool           `json:"is_default"`
	Config    map[string]any `json:"config"`
}

// Notifier is the notification-sending collaborator wrapped by the API.
// Implementations are read-only after construction and safe for concurrent use.
type Notifier interface {
	// Send delivers message to the selected providers and reports per-provider success
	Send(ctx context.Context, message string, selection ProviderSelection, allProviders bool) (SendResult, error)

	// ListProviders returns every configured provider
	ListProviders() []ProviderDescriptor

	// IsConfigured reports whether at least one provider is configured
	IsConfigured() bool
}

// Sender delivers a message to a single external provider
type Sender interface {
	Send(ctx context.Context, message string) error
}
