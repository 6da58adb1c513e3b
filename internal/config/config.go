package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	CORS      CORSConfig
	Providers ProvidersConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	StaticDir       string
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// ProvidersConfig holds the settings of every supported messaging provider.
// A provider is configured when its required fields are non-empty.
type ProvidersConfig struct {
	Defaults []string
	Timeout  time.Duration

	Telegram TelegramConfig
	Slack    WebhookConfig
	Discord  DiscordConfig
	Teams    WebhookConfig
	Pushover PushoverConfig
	Ntfy     NtfyConfig
	Endpoint EndpointConfig
}

type TelegramConfig struct {
	Token  string
	ChatID string
}

type WebhookConfig struct {
	URL string
}

type DiscordConfig struct {
	WebhookURL string
	Username   string
}

type PushoverConfig struct {
	Token string
	User  string
}

type NtfyConfig struct {
	Topic     string
	ServerURL string
	Token     string
}

type EndpointConfig struct {
	URL  string
	Name string
}

// Load creates a new Config from environment variables
func Load() *Config {
	return &Config{
		App: AppConfig{
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8000"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			StaticDir:       getEnv("STATIC_DIR", "static"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
		Providers: ProvidersConfig{
			Defaults: getListEnv("TELERT_DEFAULT_PROVIDER", nil),
			Timeout:  getDurationEnv("PROVIDER_TIMEOUT", 20*time.Second),
			Telegram: TelegramConfig{
				Token:  getEnv("TELERT_TELEGRAM_TOKEN", ""),
				ChatID: getEnv("TELERT_TELEGRAM_CHAT_ID", ""),
			},
			Slack: WebhookConfig{
				URL: getEnv("TELERT_SLACK_WEBHOOK", ""),
			},
			Discord: DiscordConfig{
				WebhookURL: getEnv("TELERT_DISCORD_WEBHOOK", ""),
				Username:   getEnv("TELERT_DISCORD_USERNAME", "Telert"),
			},
			Teams: WebhookConfig{
				URL: getEnv("TELERT_TEAMS_WEBHOOK", ""),
			},
			Pushover: PushoverConfig{
				Token: getEnv("TELERT_PUSHOVER_TOKEN", ""),
				User:  getEnv("TELERT_PUSHOVER_USER", ""),
			},
			Ntfy: NtfyConfig{
				Topic:     getEnv("TELERT_NTFY_TOPIC", ""),
				ServerURL: getEnv("TELERT_NTFY_SERVER", "https://ntfy.sh"),
				Token:     getEnv("TELERT_NTFY_TOKEN", ""),
			},
			Endpoint: EndpointConfig{
				URL:  getEnv("TELERT_ENDPOINT_URL", ""),
				Name: getEnv("TELERT_ENDPOINT_NAME", "Custom Endpoint"),
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// plain seconds, as the python client accepted
		if secs := getIntEnv(key, -1); secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// getListEnv splits a comma separated value, dropping empty items
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
