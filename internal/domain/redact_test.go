package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactConfig(t *testing.T) {
	tests := []struct {
		name   string
		config map[string]any
		want   map[string]any
	}{
		{
			name:   "token masked",
			config: map[string]any{"token": "abc123", "region": "us"},
			want:   map[string]any{"token": RedactedValue, "region": "us"},
		},
		{
			name:   "webhook url masked",
			config: map[string]any{"webhook_url": "https://hooks.slack.com/x", "username": "bot"},
			want:   map[string]any{"webhook_url": RedactedValue, "username": "bot"},
		},
		{
			name:   "both masked",
			config: map[string]any{"token": "t", "webhook_url": "u", "chat_id": 12},
			want:   map[string]any{"token": RedactedValue, "webhook_url": RedactedValue, "chat_id": 12},
		},
		{
			name:   "nothing sensitive",
			config: map[string]any{"topic": "alerts", "server_url": "https://ntfy.sh"},
			want:   map[string]any{"topic": "alerts", "server_url": "https://ntfy.sh"},
		},
		{
			name:   "nil config",
			config: nil,
			want:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactConfig(tt.config))
		})
	}
}

func TestRedactedValue_IsEightCharacters(t *testing.T) {
	assert.Equal(t, 8, len([]rune(RedactedValue)))
}

func TestProviderDescriptor_RedactedLeavesOriginal(t *testing.T) {
	original := ProviderDescriptor{
		Name:      "telegram",
		IsDefault: true,
		Config:    map[string]any{"token": "secret", "chat_id": "42"},
	}

	redacted := original.Redacted()

	assert.Equal(t, RedactedValue, redacted.Config["token"])
	assert.Equal(t, "secret", original.Config["token"])
	assert.Equal(t, "telegram", redacted.Name)
	assert.True(t, redacted.IsDefault)
}

func TestRedactProviders(t *testing.T) {
	assert.Equal(t, []ProviderDescriptor{}, RedactProviders(nil))

	providers := []ProviderDescriptor{
		{Name: "slack", IsDefault: true, Config: map[string]any{"webhook_url": "u"}},
		{Name: "ntfy", Config: map[string]any{"topic": "t"}},
	}
	redacted := RedactProviders(providers)

	assert.Len(t, redacted, 2)
	assert.Equal(t, RedactedValue, redacted[0].Config["webhook_url"])
	assert.Equal(t, "t", redacted[1].Config["topic"])
	assert.Equal(t, []string{"slack"}, DefaultProviderNames(providers))
	assert.Equal(t, []string{}, DefaultProviderNames(nil))
}
