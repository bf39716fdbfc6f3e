// Package translate provides the translation providers behind /api/translate.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lingoreader-backend/internal/config"
)

// New builds the provider selected by cfg.Provider. Remote providers are
// wrapped in a circuit breaker; the stub is returned as is.
func New(ctx context.Context, cfg config.TranslateConfig, logger *slog.Logger) (Translator, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	var provider Translator
	switch cfg.Provider {
	case config.ProviderStub:
		logger.Warn("translation provider is the stub; every lookup is a miss")
		return NewStub(), nil
	case config.ProviderAzure:
		provider = NewAzure(cfg.AzureEndpoint, cfg.AzureKey, cfg.AzureRegion, httpClient, logger)
	case config.ProviderOpenAI:
		provider = NewOpenAI(cfg.OpenAIKey, "", cfg.OpenAIModel, httpClient, logger)
	case config.ProviderGemini:
		g, err := NewGemini(ctx, cfg.GeminiKey, "", cfg.GeminiModel, httpClient, logger)
		if err != nil {
			return nil, err
		}
		provider = g
	default:
		return nil, fmt.Errorf("translate: unknown provider %q", cfg.Provider)
	}

	return NewBreaker(cfg.Provider, provider, cfg.BreakerFailures, cfg.BreakerTimeout, logger), nil
}
