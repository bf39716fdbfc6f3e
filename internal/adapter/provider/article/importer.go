// Package article fetches web pages and extracts their readable text.
package article

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-shiori/go-readability"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
	"github.com/heartmarshall/lingoreader-backend/internal/provider"
)

const userAgent = "lingoreader/1.0 (+https://github.com/heartmarshall/lingoreader-backend)"

// Importer downloads a page and extracts its main article.
type Importer struct {
	httpClient *http.Client
	maxBytes   int64
	log        *slog.Logger
}

// NewImporter creates an Importer. Pages larger than maxBytes are rejected.
func NewImporter(httpClient *http.Client, maxBytes int64, logger *slog.Logger) *Importer {
	return &Importer{
		httpClient: httpClient,
		maxBytes:   maxBytes,
		log:        logger.With("adapter", "article"),
	}
}

// Fetch downloads rawURL and extracts its article. Invalid URLs and pages
// without readable text return a domain.ValidationError.
func (i *Importer) Fetch(ctx context.Context, rawURL string) (*provider.ArticleResult, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domain.NewValidationError("url", "must be an absolute http(s) URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("article: create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("article: fetch %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewValidationError("url", fmt.Sprintf("page returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, i.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("article: read body: %w", err)
	}
	if int64(len(body)) > i.maxBytes {
		return nil, domain.NewValidationError("url", fmt.Sprintf("page exceeds %d bytes", i.maxBytes))
	}

	parsed, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return nil, domain.NewValidationError("url", "page has no readable article")
	}

	text := normalizeText(parsed.TextContent)
	if text == "" {
		return nil, domain.NewValidationError("url", "page has no readable article")
	}

	i.log.InfoContext(ctx, "article extracted",
		slog.String("host", u.Host),
		slog.String("title", parsed.Title),
		slog.Int("chars", len(text)),
	)

	return &provider.ArticleResult{
		Title:    strings.TrimSpace(parsed.Title),
		Byline:   strings.TrimSpace(parsed.Byline),
		SiteName: strings.TrimSpace(parsed.SiteName),
		Text:     text,
		URL:      u.String(),
	}, nil
}

// normalizeText trims every line, drops runs of blank lines and keeps
// paragraph breaks as a single empty line.
func normalizeText(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimFunc(line, unicode.IsSpace)
		if line == "" {
			if len(out) > 0 && !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
