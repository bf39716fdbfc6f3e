package domain

import (
	"time"

	"github.com/google/uuid"
)

// FlashcardList is a named collection of flashcards owned by a user.
type FlashcardList struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Flashcard is a persisted front/back pair belonging to exactly one list.
type Flashcard struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ListID    uuid.UUID
	Front     string
	Back      string
	CreatedAt time.Time
}

// FlashcardDraft holds the in-progress values of a flashcard being composed.
type FlashcardDraft struct {
	Front  string
	Back   string
	ListID uuid.UUID
}

// Complete reports whether the draft satisfies the save preconditions:
// non-empty front and back and a selected list.
func (d FlashcardDraft) Complete() bool {
	return d.Front != "" && d.Back != "" && d.ListID != uuid.Nil
}
