package translate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/genai"
)

// Gemini translates through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

// NewGemini creates a Gemini provider. baseURL may be empty for the public API.
func NewGemini(ctx context.Context, apiKey, baseURL, model string, httpClient *http.Client, logger *slog.Logger) (*Gemini, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
		log:    logger.With("adapter", "gemini_translator"),
	}, nil
}

// Translate asks the model for a translation. Returns "" when the model
// produced no text.
func (g *Gemini) Translate(ctx context.Context, text, source, target string) (string, error) {
	temperature := float32(0.2)
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(buildPrompt(text, source, target)),
		&genai.GenerateContentConfig{Temperature: &temperature},
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	out := cleanCompletion(resp.Text())
	g.log.DebugContext(ctx, "gemini response",
		slog.String("model", g.model),
		slog.Int("candidates", len(resp.Candidates)),
	)

	return out, nil
}
