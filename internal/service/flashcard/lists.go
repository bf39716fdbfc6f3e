package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
	"github.com/heartmarshall/lingoreader-backend/pkg/ctxutil"
)

// ListLists returns the user's lists ordered by name, each with its card count.
func (s *Service) ListLists(ctx context.Context) ([]ListSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lists, err := s.lists.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	counts, err := s.cards.CountByLists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count flashcards: %w", err)
	}

	out := make([]ListSummary, len(lists))
	for i, l := range lists {
		out[i] = ListSummary{FlashcardList: *l, CardCount: counts[l.ID]}
	}

	return out, nil
}

// GetList returns a single list owned by the user.
func (s *Service) GetList(ctx context.Context, listID uuid.UUID) (*domain.FlashcardList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.lists.GetByID(ctx, userID, listID)
}

// CreateList creates a new list. Names are unique per user, ignoring case.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.FlashcardList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.lists.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	if len(existing) >= MaxListsPerUser {
		return nil, domain.NewValidationError("lists", "limit reached (max 500)")
	}

	now := time.Now().UTC()
	list, err := s.lists.Create(ctx, &domain.FlashcardList{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      domain.NormalizeName(input.Name),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", list.ID.String()),
	)

	return list, nil
}

// RenameList changes the name of a list.
func (s *Service) RenameList(ctx context.Context, input RenameListInput) (*domain.FlashcardList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.lists.Rename(ctx, userID, input.ListID, domain.NormalizeName(input.Name))
	if err != nil {
		return nil, fmt.Errorf("rename list: %w", err)
	}

	return list, nil
}

// DeleteList removes a list together with its flashcards in one transaction.
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lists.GetByID(txCtx, userID, listID); err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		var err error
		removed, err = s.cards.DeleteByList(txCtx, userID, listID)
		if err != nil {
			return fmt.Errorf("delete flashcards: %w", err)
		}

		if err := s.lists.Delete(txCtx, userID, listID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "list deleted",
		slog.String("user_id", userID.String()),
		slog.String("list_id", listID.String()),
		slog.Int64("flashcards_removed", removed),
	)

	return nil
}
