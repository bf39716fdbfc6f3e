package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

type translateRequest struct {
	Word           string `json:"word"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage"`
}

type translateResponse struct {
	Translation *string `json:"translation"`
}

// Translate makes one translation request. found is false when the response
// carries no translation or an empty one; that is not an error. An empty source lets the
// server detect the language.
func (c *Client) Translate(ctx context.Context, text, source, target string) (translation string, found bool, err error) {
	in := translateRequest{Word: text, SourceLanguage: source, TargetLanguage: target}

	var out translateResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/translate", in, &out); err != nil {
		return "", false, fmt.Errorf("translate: %w", err)
	}
	if out.Translation == nil || *out.Translation == "" {
		return "", false, nil
	}
	return *out.Translation, true, nil
}

// Languages returns the languages the translation endpoint accepts.
func (c *Client) Languages(ctx context.Context) ([]domain.Language, error) {
	var wire []struct {
		Code       string `json:"code"`
		NativeName string `json:"nativeName"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/languages", nil, &wire); err != nil {
		return nil, fmt.Errorf("languages: %w", err)
	}
	out := make([]domain.Language, len(wire))
	for i, w := range wire {
		out[i] = domain.Language{Code: w.Code, NativeName: w.NativeName}
	}
	return out, nil
}
