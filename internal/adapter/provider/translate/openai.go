package translate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// OpenAI translates through the OpenAI chat completions API.
type OpenAI struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

// NewOpenAI creates an OpenAI provider. baseURL may be empty for the public API.
func NewOpenAI(apiKey, baseURL, model string, httpClient *http.Client, logger *slog.Logger) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    logger.With("adapter", "openai_translator"),
	}
}

// Translate asks the model for a translation. Returns "" when the model
// produced no text.
func (o *OpenAI) Translate(ctx context.Context, text, source, target string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a translation engine for language learners.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(text, source, target),
			},
		},
		MaxTokens:   256,
		Temperature: 0.2,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	o.log.DebugContext(ctx, "openai response",
		slog.String("model", resp.Model),
		slog.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return cleanCompletion(resp.Choices[0].Message.Content), nil
}
