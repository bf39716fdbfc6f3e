package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedList inserts a flashcard list owned by userID.
func SeedList(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.FlashcardList {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	list := domain.FlashcardList{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "List " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcard_lists (id, user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		list.ID, list.UserID, list.Name, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList: %v", err)
	}

	return list
}

// SeedFlashcard inserts a flashcard into list.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, list domain.FlashcardList) domain.Flashcard {
	t.Helper()

	suffix := uniqueSuffix()
	card := domain.Flashcard{
		ID:        uuid.New(),
		UserID:    list.UserID,
		ListID:    list.ID,
		Front:     "front " + suffix,
		Back:      "back " + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcards (id, user_id, list_id, front, back, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		card.ID, card.UserID, card.ListID, card.Front, card.Back, card.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard: %v", err)
	}

	return card
}

// SeedText inserts a plain text owned by userID.
func SeedText(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Text {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	text := domain.Text{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Text " + uniqueSuffix(),
		Content:   "El perro corre por el parque.",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO texts (id, user_id, name, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		text.ID, text.UserID, text.Name, text.Content, text.CreatedAt, text.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedText: %v", err)
	}

	return text
}
