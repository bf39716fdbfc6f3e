package domain

import (
	"time"

	"github.com/google/uuid"
)

// Text is a reading text owned by a user. It carries either inline Content or
// a reference to an uploaded e-book in object storage.
type Text struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Content        string
	EbookKey       *string
	SourceURL      *string
	LastUsedListID *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsEbook returns true if the text is backed by an uploaded e-book file.
func (t *Text) IsEbook() bool {
	return t.EbookKey != nil && *t.EbookKey != ""
}
