package reader

import (
	"context"
	"strings"
	"sync/atomic"
)

type translationAPI interface {
	Translate(ctx context.Context, text, source, target string) (string, bool, error)
}

var quoteStripper = strings.NewReplacer(`'`, "", `"`, "")

// Translator issues translation requests and cleans up their results.
// Every call is one round trip; nothing is retried or cached.
type Translator struct {
	api      translationAPI
	inFlight atomic.Int64
}

// NewTranslator creates a Translator over the translation endpoint.
func NewTranslator(api translationAPI) *Translator {
	return &Translator{api: api}
}

// Translate returns the translation of text with every ' and " removed and
// lower-cased. ok is false on a miss, including a result that is empty once
// cleaned. An empty source requests detection.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, bool, error) {
	t.inFlight.Add(1)
	defer t.inFlight.Add(-1)

	raw, found, err := t.api.Translate(ctx, text, source, target)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	cleaned := CleanTranslation(raw)
	if cleaned == "" {
		return "", false, nil
	}
	return cleaned, true, nil
}

// Pending reports whether any request is in flight.
func (t *Translator) Pending() bool {
	return t.inFlight.Load() > 0
}

// CleanTranslation removes quote characters and lower-cases s.
func CleanTranslation(s string) string {
	return strings.ToLower(quoteStripper.Replace(s))
}
