package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

// Translator is implemented by every translation provider.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Breaker guards a provider with a circuit breaker. While the circuit is open
// calls fail fast with domain.ErrUnavailable.
type Breaker struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker wraps next. The circuit opens after maxFailures consecutive
// failures and half-opens after openTimeout.
func NewBreaker(name string, next Translator, maxFailures uint32, openTimeout time.Duration, logger *slog.Logger) *Breaker {
	log := logger.With("adapter", "translate_breaker", "provider", name)

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			// Caller cancellations say nothing about provider health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

// Translate forwards to the wrapped provider through the circuit breaker.
func (b *Breaker) Translate(ctx context.Context, text, source, target string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, source, target)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("translate %s: %w", b.cb.Name(), domain.ErrUnavailable)
		}
		return "", err
	}

	return out.(string), nil
}

// State reports the current circuit state, for health reporting.
func (b *Breaker) State() string {
	return b.cb.State().String()
}
