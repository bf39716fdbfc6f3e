package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const azureAPIVersion = "3.0"

// Azure calls the Azure AI Translator REST API (v3).
type Azure struct {
	endpoint   string
	key        string
	region     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewAzure creates an Azure Translator provider. endpoint is the service base
// URL, e.g. https://api.cognitive.microsofttranslator.com.
func NewAzure(endpoint, key, region string, httpClient *http.Client, logger *slog.Logger) *Azure {
	return &Azure{
		endpoint:   strings.TrimRight(endpoint, "/"),
		key:        key,
		region:     region,
		httpClient: httpClient,
		log:        logger.With("adapter", "azure_translator"),
	}
}

type azureRequestItem struct {
	Text string `json:"Text"`
}

type azureResponseItem struct {
	DetectedLanguage *struct {
		Language string  `json:"language"`
		Score    float64 `json:"score"`
	} `json:"detectedLanguage,omitempty"`
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

type azureError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Translate translates text into target. An empty source lets the service
// detect the language. Returns "" when the service produced no translation.
func (a *Azure) Translate(ctx context.Context, text, source, target string) (string, error) {
	q := url.Values{}
	q.Set("api-version", azureAPIVersion)
	q.Set("to", target)
	if source != "" {
		q.Set("from", source)
	}
	reqURL := a.endpoint + "/translate?" + q.Encode()

	body, err := json.Marshal([]azureRequestItem{{Text: text}})
	if err != nil {
		return "", fmt.Errorf("azure: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("azure: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", a.key)
	if a.region != "" {
		req.Header.Set("Ocp-Apim-Subscription-Region", a.region)
	}
	req.Header.Set("X-ClientTraceId", uuid.NewString())

	a.log.DebugContext(ctx, "azure request",
		slog.String("source", source),
		slog.String("target", target),
		slog.Int("chars", len(text)),
	)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("azure: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("azure: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr azureError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("azure: status %d: %d %s", resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
		}
		return "", fmt.Errorf("azure: unexpected status %d", resp.StatusCode)
	}

	var items []azureResponseItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return "", fmt.Errorf("azure: decode json: %w", err)
	}

	if len(items) == 0 || len(items[0].Translations) == 0 {
		return "", nil
	}

	if d := items[0].DetectedLanguage; d != nil {
		a.log.DebugContext(ctx, "azure detected language",
			slog.String("language", d.Language),
			slog.Float64("score", d.Score),
		)
	}

	return items[0].Translations[0].Text, nil
}
