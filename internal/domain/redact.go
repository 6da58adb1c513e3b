package domain

// RedactedValue replaces secrets in provider configs
const RedactedValue = "••••••••"

// sensitiveConfigKeys are masked before a config leaves the process
var sensitiveConfigKeys = []string{"token", "webhook_url"}

// RedactConfig returns a copy of config with sensitive values masked.
// The input map is never modified.
func RedactConfig(config map[string]any) map[string]any {
	redacted := make(map[string]any, len(config))
	for k, v := range config {
		redacted[k] = v
	}

	for _, key := range sensitiveConfigKeys {
		if _, ok := redacted[key]; ok {
			redacted[key] = RedactedValue
		}
	}

	return redacted
}

// Redacted returns a copy of the descriptor safe to expose over the API
func (d ProviderDescriptor) Redacted() ProviderDescriptor {
	return ProviderDescriptor{
		Name:      d.Name,
		IsDefault: d.IsDefault,
		Config:    RedactConfig(d.Config),
	}
}

// RedactProviders redacts every descriptor, always returning a non-nil slice
func RedactProviders(providers []ProviderDescriptor) []ProviderDescriptor {
	redacted := make([]ProviderDescriptor, 0, len(providers))
	for _, p := range providers {
		redacted = append(redacted, p.Redacted())
	}
	return redacted
}

// DefaultProviderNames returns the names flagged as default, in order
func DefaultProviderNames(providers []ProviderDescriptor) []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		if p.IsDefault {
			names = append(names, p.Name)
		}
	}
	return names
}
