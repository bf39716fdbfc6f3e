package flashcard

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError
	errs = validateListName(errs, i.Name)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameListInput holds the parameters for renaming a list.
type RenameListInput struct {
	ListID uuid.UUID
	Name   string
}

// Validate checks all fields and collects all errors.
func (i RenameListInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	errs = validateListName(errs, i.Name)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateFlashcardInput holds the parameters for saving a flashcard.
type CreateFlashcardInput struct {
	ListID uuid.UUID
	Front  string
	Back   string
}

// Validate checks all fields and collects all errors.
func (i CreateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	errs = validateSide(errs, "front", i.Front)
	errs = validateSide(errs, "back", i.Back)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFlashcardInput holds the parameters for editing a flashcard.
type UpdateFlashcardInput struct {
	CardID uuid.UUID
	Front  string
	Back   string
}

// Validate checks all fields and collects all errors.
func (i UpdateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	errs = validateSide(errs, "front", i.Front)
	errs = validateSide(errs, "back", i.Back)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateListName(errs []domain.FieldError, name string) []domain.FieldError {
	name = domain.NormalizeName(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxListNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validateSide(errs []domain.FieldError, field, value string) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(value) > MaxSideLength {
		return append(errs, domain.FieldError{Field: field, Message: "max 5000 characters"})
	}
	return errs
}
