package reader

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

type flashcardCreator interface {
	CreateFlashcard(ctx context.Context, listID uuid.UUID, front, back string) (*domain.Flashcard, error)
}

// Persister writes finished drafts to the catalog.
type Persister struct {
	cards flashcardCreator
	log   *slog.Logger
}

// NewPersister creates a Persister.
func NewPersister(log *slog.Logger, cards flashcardCreator) *Persister {
	return &Persister{
		cards: cards,
		log:   log.With("component", "persister"),
	}
}

// Save creates one flashcard. When front or back is empty or listID is unset
// it returns nil, nil without contacting the catalog. A catalog error is
// returned as is; nothing is rolled back.
func (p *Persister) Save(ctx context.Context, front, back string, listID uuid.UUID) (*domain.Flashcard, error) {
	draft := domain.FlashcardDraft{Front: front, Back: back, ListID: listID}
	if !draft.Complete() {
		return nil, nil
	}

	card, err := p.cards.CreateFlashcard(ctx, listID, front, back)
	if err != nil {
		return nil, err
	}

	p.log.InfoContext(ctx, "flashcard saved",
		slog.String("flashcard_id", card.ID.String()),
		slog.String("list_id", listID.String()),
	)
	return card, nil
}
