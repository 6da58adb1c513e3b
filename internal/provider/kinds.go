package provider

import (
	"net/http"
	"strings"

	"github.com/insider-one/telert-api/internal/config"
)

// Provider names
const (
	Telegram = "telegram"
	Slack    = "slack"
	Discord  = "discord"
	Teams    = "teams"
	Pushover = "pushover"
	Ntfy     = "ntfy"
	Endpoint = "endpoint"
)

var (
	telegramAPIBase = "https://api.telegram.org"
	pushoverAPIURL  = "https://api.pushover.net/1/messages.json"
)

type textPayload struct {
	Text string `json:"text"`
}

type telegramPayload struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type discordPayload struct {
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}

type pushoverPayload struct {
	Token   string `json:"token"`
	User    string `json:"user"`
	Message string `json:"message"`
}

type endpointPayload struct {
	Message string `json:"message"`
}

func telegramProvider(client *http.Client, cfg config.TelegramConfig) (map[string]any, *WebhookSender, bool) {
	if cfg.Token == "" || cfg.ChatID == "" {
		return nil, nil, false
	}

	url := telegramAPIBase + "/bot" + cfg.Token + "/sendMessage"
	sender := NewWebhookSender(client, Telegram, url, JSONEncoder(func(message string) any {
		return telegramPayload{ChatID: cfg.ChatID, Text: message}
	}))

	return map[string]any{"token": cfg.Token, "chat_id": cfg.ChatID}, sender, true
}

func slackProvider(client *http.Client, cfg config.WebhookConfig) (map[string]any, *WebhookSender, bool) {
	if cfg.URL == "" {
		return nil, nil, false
	}

	sender := NewWebhookSender(client, Slack, cfg.URL, JSONEncoder(func(message string) any {
		return textPayload{Text: message}
	}))

	return map[string]any{"webhook_url": cfg.URL}, sender, true
}

func discordProvider(client *http.Client, cfg config.DiscordConfig) (map[string]any, *WebhookSender, bool) {
	if cfg.WebhookURL == "" {
		return nil, nil, false
	}

	sender := NewWebhookSender(client, Discord, cfg.WebhookURL, JSONEncoder(func(message string) any {
		return discordPayload{Content: message, Username: cfg.Username}
	}))

	return map[string]any{"webhook_url": cfg.WebhookURL, "username": cfg.Username}, sender, true
}

func teamsProvider(client *http.Client, cfg config.WebhookConfig) (map[string]any, *WebhookSender, bool) {
	if cfg.URL == "" {
		return nil, nil, false
	}

	sender := NewWebhookSender(client, Teams, cfg.URL, JSONEncoder(func(message string) any {
		return textPayload{Text: message}
	}))

	return map[string]any{"webhook_url": cfg.URL}, sender, true
}

func pushoverProvider(client *http.Client, cfg config.PushoverConfig) (map[string]any, *WebhookSender, bool) {
	if cfg.Token == "" || cfg.User == "" {
		return nil, nil, false
	}

	sender := NewWebhookSender(client, Pushover, pushoverAPIURL, JSONEncoder(func(message string) any {
		return pushoverPayload{Token: cfg.Token, User: cfg.User, Message: message}
	}))

	return map[string]any{"token": cfg.Token, "user": cfg.User}, sender, true
}

func ntfyProvider(client *http.Client, cfg config.NtfyConfig) (map[string]any, *WebhookSender, bool) {
	if cfg.Topic == "" {
		return nil, nil, false
	}

	url := strings.TrimSuffix(cfg.ServerURL, "/") + "/" + strings.TrimPrefix(cfg.Topic, "/")
	sender := NewWebhookSender(client, Ntfy, url, TextEncoder)

	conf := map[string]any{"topic": cfg.Topic, "server_url": cfg.ServerURL}
	if cfg.Token != "" {
		sender.WithHeader("Authorization", "Bearer "+cfg.Token)
		conf["token"] = cfg.Token
	}

	return conf, sender, true
}

func endpointProvider(client *http.Client, cfg config.EndpointConfig) (map[string]any, *WebhookSender, bool) {
	if cfg.URL == "" {
		return nil, nil, false
	}

	sender := NewWebhookSender(client, Endpoint, cfg.URL, JSONEncoder(func(message string) any {
		return endpointPayload{Message: message}
	}))

	return map[string]any{"url": cfg.URL, "name": cfg.Name}, sender, true
}
