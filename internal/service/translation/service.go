// Package translation validates translation requests and forwards them to the
// configured translation provider.
package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
	"github.com/heartmarshall/lingoreader-backend/pkg/ctxutil"
)

type translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// MaxTextLength bounds a single selection sent for translation.
const MaxTextLength = 2000

// Service translates selections from reading texts.
type Service struct {
	translator translator
	log        *slog.Logger
}

// NewService creates a new translation service.
func NewService(log *slog.Logger, translator translator) *Service {
	return &Service{
		translator: translator,
		log:        log.With("service", "translation"),
	}
}

// TranslateInput is a single translation request. An empty SourceLanguage
// asks the provider to detect the language.
type TranslateInput struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
}

// Validate checks all fields and collects all errors.
func (i TranslateInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	} else if utf8.RuneCountInString(text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "word", Message: "max 2000 characters"})
	}

	if i.SourceLanguage != "" && !domain.IsSupportedLanguage(i.SourceLanguage) {
		errs = append(errs, domain.FieldError{Field: "sourceLanguage", Message: "unsupported language"})
	}

	switch {
	case i.TargetLanguage == "":
		errs = append(errs, domain.FieldError{Field: "targetLanguage", Message: "required"})
	case !domain.IsSupportedLanguage(i.TargetLanguage):
		errs = append(errs, domain.FieldError{Field: "targetLanguage", Message: "unsupported language"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Translate returns the translation of input.Text. An empty string with a nil
// error means the provider had no translation.
func (s *Service) Translate(ctx context.Context, input TranslateInput) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return "", err
	}

	start := time.Now()
	out, err := s.translator.Translate(ctx, strings.TrimSpace(input.Text), input.SourceLanguage, input.TargetLanguage)
	if err != nil {
		s.log.ErrorContext(ctx, "translation failed",
			slog.String("user_id", userID.String()),
			slog.String("target", input.TargetLanguage),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("translate: %w", err)
	}

	s.log.DebugContext(ctx, "translated",
		slog.String("user_id", userID.String()),
		slog.String("source", input.SourceLanguage),
		slog.String("target", input.TargetLanguage),
		slog.Bool("miss", out == ""),
		slog.Duration("took", time.Since(start)),
	)

	return out, nil
}

// Languages returns the languages accepted by Translate.
func (s *Service) Languages() []domain.Language {
	return domain.Languages()
}
