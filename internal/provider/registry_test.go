package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/insider-one/telert-api/internal/config"
	"github.com/insider-one/telert-api/internal/domain"
)

// MockSender is a mock implementation of domain.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestRegistry_Defaults(t *testing.T) {
	t.Run("first provider when none configured as default", func(t *testing.T) {
		r := NewRegistry(newTestLogger())
		r.Register("Slack", map[string]any{}, new(MockSender))
		r.Register("ntfy", map[string]any{}, new(MockSender))
		r.SetDefaults(nil)

		providers := r.ListProviders()
		require.Len(t, providers, 2)
		assert.Equal(t, "slack", providers[0].Name)
		assert.True(t, providers[0].IsDefault)
		assert.False(t, providers[1].IsDefault)
	})

	t.Run("explicit defaults", func(t *testing.T) {
		r := NewRegistry(newTestLogger())
		r.Register("slack", map[string]any{}, new(MockSender))
		r.Register("ntfy", map[string]any{}, new(MockSender))
		r.Register("teams", map[string]any{}, new(MockSender))
		r.SetDefaults([]string{"teams", "NTFY", "pushover"})

		var defaults []string
		for _, p := range r.ListProviders() {
			if p.IsDefault {
				defaults = append(defaults, p.Name)
			}
		}
		assert.Equal(t, []string{"ntfy", "teams"}, defaults)
	})

	t.Run("empty registry", func(t *testing.T) {
		r := NewRegistry(newTestLogger())
		r.SetDefaults([]string{"slack"})

		assert.False(t, r.IsConfigured())
		assert.Empty(t, r.ListProviders())
	})
}

func TestRegistry_ListProvidersReturnsCopies(t *testing.T) {
	r := NewRegistry(newTestLogger())
	r.Register("telegram", map[string]any{"token": "secret"}, new(MockSender))

	listed := r.ListProviders()
	listed[0].Config["token"] = "changed"

	assert.Equal(t, "secret", r.ListProviders()[0].Config["token"])
}

func TestRegistry_Send(t *testing.T) {
	ctx := context.Background()

	newRegistry := func() (*Registry, *MockSender, *MockSender, *MockSender) {
		slack, ntfy, teams := new(MockSender), new(MockSender), new(MockSender)
		r := NewRegistry(newTestLogger())
		r.Register(Slack, map[string]any{}, slack)
		r.Register(Ntfy, map[string]any{}, ntfy)
		r.Register(Teams, map[string]any{}, teams)
		r.SetDefaults([]string{Ntfy})
		return r, slack, ntfy, teams
	}

	t.Run("default providers when selection unset", func(t *testing.T) {
		r, slack, ntfy, teams := newRegistry()
		ntfy.On("Send", ctx, "hi").Return(nil).Once()

		result, err := r.Send(ctx, "hi", domain.ProviderSelection{}, false)

		require.NoError(t, err)
		assert.Equal(t, domain.SendResult{{Provider: Ntfy, OK: true}}, result)
		ntfy.AssertExpectations(t)
		slack.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		teams.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("empty list falls back to defaults", func(t *testing.T) {
		r, _, ntfy, _ := newRegistry()
		ntfy.On("Send", ctx, "hi").Return(nil).Once()

		result, err := r.Send(ctx, "hi", domain.SelectMany(), false)

		require.NoError(t, err)
		assert.Equal(t, []string{Ntfy}, result.Successful())
	})

	t.Run("selected providers in request order", func(t *testing.T) {
		r, slack, _, teams := newRegistry()
		teams.On("Send", ctx, "hi").Return(nil).Once()
		slack.On("Send", ctx, "hi").Return(errors.New("boom")).Once()

		result, err := r.Send(ctx, "hi", domain.SelectMany("teams", "slack", "teams"), false)

		require.NoError(t, err)
		assert.Equal(t, domain.SendResult{
			{Provider: Teams, OK: true},
			{Provider: Slack, OK: false},
		}, result)
		teams.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("all providers ignores selection", func(t *testing.T) {
		r, slack, ntfy, teams := newRegistry()
		slack.On("Send", ctx, "hi").Return(nil).Once()
		ntfy.On("Send", ctx, "hi").Return(nil).Once()
		teams.On("Send", ctx, "hi").Return(nil).Once()

		result, err := r.Send(ctx, "hi", domain.SelectOne("slack"), true)

		require.NoError(t, err)
		assert.Equal(t, []string{Slack, Ntfy, Teams}, result.Successful())
	})

	t.Run("unknown provider sends nothing", func(t *testing.T) {
		r, slack, _, _ := newRegistry()

		result, err := r.Send(ctx, "hi", domain.SelectMany("slack", "telegram"), false)

		assert.ErrorIs(t, err, domain.ErrUnknownProvider)
		assert.Contains(t, err.Error(), "telegram")
		assert.Nil(t, result)
		slack.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("not configured", func(t *testing.T) {
		r := NewRegistry(newTestLogger())

		_, err := r.Send(ctx, "hi", domain.ProviderSelection{}, true)

		assert.ErrorIs(t, err, domain.ErrNotConfigured)
	})
}

func TestNewFromConfig(t *testing.T) {
	var mu sync.Mutex
	received := make(map[string]string)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		received[r.URL.Path] = string(body)
		mu.Unlock()
		if r.URL.Path == "/teams" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	oldTelegram, oldPushover := telegramAPIBase, pushoverAPIURL
	telegramAPIBase = server.URL
	pushoverAPIURL = server.URL + "/pushover"
	defer func() { telegramAPIBase, pushoverAPIURL = oldTelegram, oldPushover }()

	cfg := config.ProvidersConfig{
		Defaults: []string{"slack"},
		Telegram: config.TelegramConfig{Token: "tg-token", ChatID: "42"},
		Slack:    config.WebhookConfig{URL: server.URL + "/slack"},
		Discord:  config.DiscordConfig{WebhookURL: server.URL + "/discord", Username: "Telert"},
		Teams:    config.WebhookConfig{URL: server.URL + "/teams"},
		Pushover: config.PushoverConfig{Token: "po-token", User: "po-user"},
		Ntfy:     config.NtfyConfig{Topic: "alerts", ServerURL: server.URL + "/"},
		Endpoint: config.EndpointConfig{URL: server.URL + "/endpoint", Name: "Custom Endpoint"},
	}

	r := NewFromConfig(cfg, newTestLogger())

	var names []string
	for _, p := range r.ListProviders() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{Telegram, Slack, Discord, Teams, Pushover, Ntfy, Endpoint}, names)

	result, err := r.Send(context.Background(), "build #12 passed", domain.ProviderSelection{}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{Teams}, result.Failed())
	assert.Len(t, result.Successful(), 6)

	decode := func(path string) map[string]any {
		var v map[string]any
		require.NoError(t, json.Unmarshal([]byte(received[path]), &v))
		return v
	}

	assert.Equal(t, map[string]any{"chat_id": "42", "text": "build #12 passed"}, decode("/bottg-token/sendMessage"))
	assert.Equal(t, map[string]any{"text": "build #12 passed"}, decode("/slack"))
	assert.Equal(t, map[string]any{"content": "build #12 passed", "username": "Telert"}, decode("/discord"))
	assert.Equal(t, map[string]any{"token": "po-token", "user": "po-user", "message": "build #12 passed"}, decode("/pushover"))
	assert.Equal(t, map[string]any{"message": "build #12 passed"}, decode("/endpoint"))
	assert.Equal(t, "build #12 passed", received["/alerts"])
}

func TestNewFromConfig_NothingConfigured(t *testing.T) {
	r := NewFromConfig(config.ProvidersConfig{Ntfy: config.NtfyConfig{ServerURL: "https://ntfy.sh"}}, newTestLogger())

	assert.False(t, r.IsConfigured())
	assert.Empty(t, r.ListProviders())
}

func TestNewFromConfig_FailureLogOmitsTelegramToken(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	oldTelegram := telegramAPIBase
	telegramAPIBase = server.URL
	server.Close()
	defer func() { telegramAPIBase = oldTelegram }()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	r := NewFromConfig(config.ProvidersConfig{
		Telegram: config.TelegramConfig{Token: "SECRET123", ChatID: "42"},
	}, logger)

	result, err := r.Send(context.Background(), "hi", domain.ProviderSelection{}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{Telegram}, result.Failed())

	assert.Contains(t, logs.String(), "provider send failed")
	assert.NotContains(t, logs.String(), "SECRET123")
}
