// Package flashcard implements flashcard list and flashcard management.
package flashcard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

type listRepo interface {
	GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.FlashcardList, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.FlashcardList, error)
	Create(ctx context.Context, list *domain.FlashcardList) (*domain.FlashcardList, error)
	Rename(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.FlashcardList, error)
	Delete(ctx context.Context, userID, listID uuid.UUID) error
}

type cardRepo interface {
	Create(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error)
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error)
	ListByList(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Flashcard, error)
	Update(ctx context.Context, userID, cardID uuid.UUID, front, back string) (*domain.Flashcard, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
	DeleteByList(ctx context.Context, userID, listID uuid.UUID) (int64, error)
	CountByLists(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits on user-supplied values.
const (
	MaxListNameLength = 200
	MaxSideLength     = 5000
	MaxListsPerUser   = 500
)

// Service provides flashcard list and flashcard operations.
type Service struct {
	lists listRepo
	cards cardRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new flashcard service.
func NewService(
	log *slog.Logger,
	lists listRepo,
	cards cardRepo,
	tx txManager,
) *Service {
	return &Service{
		lists: lists,
		cards: cards,
		tx:    tx,
		log:   log.With("service", "flashcard"),
	}
}

// ListSummary is a list with the number of flashcards it holds.
type ListSummary struct {
	domain.FlashcardList
	CardCount int
}
