// Package text implements management of reading texts: inline content,
// articles imported from the web, and uploaded e-books.
package text

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
	"github.com/heartmarshall/lingoreader-backend/internal/provider"
)

type textRepo interface {
	GetByID(ctx context.Context, userID, textID uuid.UUID) (*domain.Text, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Text, error)
	Create(ctx context.Context, t *domain.Text) (*domain.Text, error)
	UpdateName(ctx context.Context, userID, textID uuid.UUID, name string) (*domain.Text, error)
	UpdateContent(ctx context.Context, userID, textID uuid.UUID, content string) (*domain.Text, error)
	SetLastUsedList(ctx context.Context, userID, textID uuid.UUID, listID *uuid.UUID) (*domain.Text, error)
	Delete(ctx context.Context, userID, textID uuid.UUID) (*domain.Text, error)
}

type listRepo interface {
	GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.FlashcardList, error)
}

type articleFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*provider.ArticleResult, error)
}

type ebookStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	PresignURL(ctx context.Context, key string) (string, error)
}

// Limits on user-supplied values.
const (
	MaxNameLength   = 200
	MaxContentBytes = 1 << 20
)

const ebookContentType = "application/epub+zip"

// EbookKeyPrefix prefixes every e-book object key: ebooks/<user>/<text>.epub.
const EbookKeyPrefix = "ebooks/"

// Service provides text operations.
type Service struct {
	texts   textRepo
	lists   listRepo
	fetcher articleFetcher
	storage ebookStorage
	log     *slog.Logger
}

// NewService creates a new text service. storage may be nil, in which case
// e-book uploads fail with domain.ErrUnavailable.
func NewService(
	log *slog.Logger,
	texts textRepo,
	lists listRepo,
	fetcher articleFetcher,
	storage ebookStorage,
) *Service {
	return &Service{
		texts:   texts,
		lists:   lists,
		fetcher: fetcher,
		storage: storage,
		log:     log.With("service", "text"),
	}
}

// TextDetail is a text together with a temporary download link for its
// e-book file, if it has one.
type TextDetail struct {
	domain.Text
	EbookURL string
}
