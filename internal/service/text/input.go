package text

import (
	"io"
	"net/url"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

// CreateTextInput holds the parameters for creating a plain text.
type CreateTextInput struct {
	Name    string
	Content string
}

// Validate checks all fields and collects all errors.
func (i CreateTextInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	errs = validateContent(errs, i.Content)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportTextInput holds the parameters for importing an article from a URL.
// Name is optional and defaults to the article title.
type ImportTextInput struct {
	URL  string
	Name string
}

// Validate checks all fields and collects all errors.
func (i ImportTextInput) Validate() error {
	var errs []domain.FieldError

	raw := strings.TrimSpace(i.URL)
	if raw == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	} else if u, err := url.Parse(raw); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be an absolute http(s) URL"})
	}

	if strings.TrimSpace(i.Name) != "" {
		errs = validateName(errs, i.Name)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadEbookInput holds an uploaded e-book file.
type UploadEbookInput struct {
	Name     string
	Filename string
	Body     io.Reader
	Size     int64
}

// Validate checks all fields and collects all errors.
func (i UploadEbookInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)

	if !strings.EqualFold(path.Ext(i.Filename), ".epub") {
		errs = append(errs, domain.FieldError{Field: "file", Message: "must be an .epub file"})
	}
	if i.Body == nil || i.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameTextInput holds the parameters for renaming a text.
type RenameTextInput struct {
	TextID uuid.UUID
	Name   string
}

// Validate checks all fields and collects all errors.
func (i RenameTextInput) Validate() error {
	var errs []domain.FieldError

	if i.TextID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "text_id", Message: "required"})
	}
	errs = validateName(errs, i.Name)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateContentInput holds edited text content.
type UpdateContentInput struct {
	TextID  uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i UpdateContentInput) Validate() error {
	var errs []domain.FieldError

	if i.TextID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "text_id", Message: "required"})
	}
	errs = validateContent(errs, i.Content)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = domain.NormalizeName(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validateContent(errs []domain.FieldError, content string) []domain.FieldError {
	if strings.TrimSpace(content) == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > MaxContentBytes {
		return append(errs, domain.FieldError{Field: "content", Message: "max 1 MiB"})
	}
	return errs
}

// truncateName shortens an imported title to the name limit.
func truncateName(name string) string {
	name = domain.NormalizeName(name)
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	return string([]rune(name)[:MaxNameLength])
}
