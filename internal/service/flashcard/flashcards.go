package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
	"github.com/heartmarshall/lingoreader-backend/pkg/ctxutil"
)

// CreateFlashcard saves a front/back pair into one of the user's lists.
func (s *Service) CreateFlashcard(ctx context.Context, input CreateFlashcardInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.lists.GetByID(ctx, userID, input.ListID); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	card, err := s.cards.Create(ctx, &domain.Flashcard{
		ID:        uuid.New(),
		UserID:    userID,
		ListID:    input.ListID,
		Front:     strings.TrimSpace(input.Front),
		Back:      strings.TrimSpace(input.Back),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", input.ListID.String()),
		slog.String("flashcard_id", card.ID.String()),
	)

	return card, nil
}

// ListFlashcards returns the flashcards of a list, newest first.
func (s *Service) ListFlashcards(ctx context.Context, listID uuid.UUID) ([]*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.lists.GetByID(ctx, userID, listID); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	cards, err := s.cards.ListByList(ctx, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	return cards, nil
}

// UpdateFlashcard replaces both sides of a flashcard.
func (s *Service) UpdateFlashcard(ctx context.Context, input UpdateFlashcardInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.Update(ctx, userID, input.CardID,
		strings.TrimSpace(input.Front), strings.TrimSpace(input.Back))
	if err != nil {
		return nil, fmt.Errorf("update flashcard: %w", err)
	}

	return card, nil
}

// DeleteFlashcard removes a flashcard.
func (s *Service) DeleteFlashcard(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard deleted",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", cardID.String()),
	)

	return nil
}
