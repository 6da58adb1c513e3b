package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/insider-one/telert-api/internal/config"
	"github.com/insider-one/telert-api/internal/domain"
)

type registered struct {
	name      string
	isDefault bool
	config    map[string]any
	sender    domain.Sender
}

// Registry implements domain.Notifier over a fixed set of providers.
// It is built once at startup and never mutated while serving.
type Registry struct {
	providers []*registered
	byName    map[string]*registered
	logger    *slog.Logger
}

// NewRegistry creates an empty Registry
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		byName: make(map[string]*registered),
		logger: logger,
	}
}

// NewFromConfig builds a Registry with every provider configured in cfg
func NewFromConfig(cfg config.ProvidersConfig, logger *slog.Logger) *Registry {
	client := &http.Client{Timeout: cfg.Timeout}
	r := NewRegistry(logger)

	add := func(name string, conf map[string]any, sender *WebhookSender, ok bool) {
		if ok {
			r.Register(name, conf, sender)
		}
	}

	conf, sender, ok := telegramProvider(client, cfg.Telegram)
	add(Telegram, conf, sender, ok)
	conf, sender, ok = slackProvider(client, cfg.Slack)
	add(Slack, conf, sender, ok)
	conf, sender, ok = discordProvider(client, cfg.Discord)
	add(Discord, conf, sender, ok)
	conf, sender, ok = teamsProvider(client, cfg.Teams)
	add(Teams, conf, sender, ok)
	conf, sender, ok = pushoverProvider(client, cfg.Pushover)
	add(Pushover, conf, sender, ok)
	conf, sender, ok = ntfyProvider(client, cfg.Ntfy)
	add(Ntfy, conf, sender, ok)
	conf, sender, ok = endpointProvider(client, cfg.Endpoint)
	add(Endpoint, conf, sender, ok)

	r.SetDefaults(cfg.Defaults)

	return r
}

// Register adds a provider. Registering a name twice replaces the sender and config.
func (r *Registry) Register(name string, conf map[string]any, sender domain.Sender) {
	name = normalizeName(name)
	if p, ok := r.byName[name]; ok {
		p.config = conf
		p.sender = sender
		return
	}

	p := &registered{name: name, config: conf, sender: sender}
	r.providers = append(r.providers, p)
	r.byName[name] = p
}

// SetDefaults marks the default providers. With no usable names the first
// registered provider becomes the default.
func (r *Registry) SetDefaults(names []string) {
	for _, p := range r.providers {
		p.isDefault = false
	}

	marked := 0
	for _, name := range names {
		p, ok := r.byName[normalizeName(name)]
		if !ok {
			r.logger.Warn("default provider is not configured", "provider", name)
			continue
		}
		p.isDefault = true
		marked++
	}

	if marked == 0 && len(r.providers) > 0 {
		r.providers[0].isDefault = true
	}
}

// IsConfigured reports whether at least one provider is registered
func (r *Registry) IsConfigured() bool {
	return len(r.providers) > 0
}

// ListProviders returns a snapshot of the registered providers
func (r *Registry) ListProviders() []domain.ProviderDescriptor {
	descriptors := make([]domain.ProviderDescriptor, 0, len(r.providers))
	for _, p := range r.providers {
		conf := make(map[string]any, len(p.config))
		for k, v := range p.config {
			conf[k] = v
		}
		descriptors = append(descriptors, domain.ProviderDescriptor{
			Name:      p.name,
			IsDefault: p.isDefault,
			Config:    conf,
		})
	}
	return descriptors
}

// Send delivers the message once to each target provider. A provider that
// fails is reported as false; only target resolution errors are returned.
func (r *Registry) Send(ctx context.Context, message string, selection domain.ProviderSelection, allProviders bool) (domain.SendResult, error) {
	if !r.IsConfigured() {
		return nil, domain.ErrNotConfigured
	}

	targets, err := r.targets(selection, allProviders)
	if err != nil {
		return nil, err
	}

	result := make(domain.SendResult, 0, len(targets))
	for _, p := range targets {
		err := p.sender.Send(ctx, message)
		if err != nil {
			r.logger.Warn("provider send failed",
				"provider", p.name,
				"error", err,
			)
		} else {
			r.logger.Debug("provider send succeeded", "provider", p.name)
		}
		result = append(result, domain.ProviderOutcome{Provider: p.name, OK: err == nil})
	}

	return result, nil
}

func (r *Registry) targets(selection domain.ProviderSelection, allProviders bool) ([]*registered, error) {
	if allProviders {
		return r.providers, nil
	}

	var names []string
	for _, name := range selection.Names() {
		if name = normalizeName(name); name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		var defaults []*registered
		for _, p := range r.providers {
			if p.isDefault {
				defaults = append(defaults, p)
			}
		}
		return defaults, nil
	}

	seen := make(map[string]bool, len(names))
	targets := make([]*registered, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		p, ok := r.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, name)
		}
		targets = append(targets, p)
	}

	return targets, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
