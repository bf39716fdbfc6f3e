package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Translate.validate(); err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be > 0 (got %d)", c.Server.MaxUploadBytes)
	}

	if c.Import.MaxBodyBytes <= 0 {
		return fmt.Errorf("import.max_body_bytes must be > 0 (got %d)", c.Import.MaxBodyBytes)
	}

	if c.Storage.OrphanGrace < 0 {
		return fmt.Errorf("storage.orphan_grace must be >= 0 (got %v)", c.Storage.OrphanGrace)
	}

	if c.RateLimit.TranslatePerMinute <= 0 {
		return fmt.Errorf("rate_limit.translate_per_minute must be > 0 (got %d)", c.RateLimit.TranslatePerMinute)
	}

	return nil
}

func (t *TranslateConfig) validate() error {
	t.Provider = strings.ToLower(strings.TrimSpace(t.Provider))
	if !IsKnownProvider(t.Provider) {
		return fmt.Errorf("unknown provider %q (want one of %s)", t.Provider, strings.Join(knownProviders, ", "))
	}

	switch t.Provider {
	case ProviderAzure:
		if t.AzureKey == "" {
			return fmt.Errorf("azure_key is required for provider %q", t.Provider)
		}
	case ProviderOpenAI:
		if t.OpenAIKey == "" {
			return fmt.Errorf("openai_key is required for provider %q", t.Provider)
		}
	case ProviderGemini:
		if t.GeminiKey == "" {
			return fmt.Errorf("gemini_key is required for provider %q", t.Provider)
		}
	}

	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	if t.BreakerFailures == 0 {
		return fmt.Errorf("breaker_failures must be > 0")
	}

	return nil
}
