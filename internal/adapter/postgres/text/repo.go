// Package text implements the reading text repository using PostgreSQL.
package text

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

const table = "texts"

var columns = []string{
	"id", "user_id", "name", "content", "ebook_key", "source_url",
	"last_used_list_id", "created_at", "updated_at",
}

// Listing omits the body; content can be large.
var summaryColumns = []string{
	"id", "user_id", "name", "'' AS content", "ebook_key", "source_url",
	"last_used_list_id", "created_at", "updated_at",
}

const returning = "RETURNING id, user_id, name, content, ebook_key, source_url, last_used_list_id, created_at, updated_at"

type row struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	Name           string     `db:"name"`
	Content        string     `db:"content"`
	EbookKey       *string    `db:"ebook_key"`
	SourceURL      *string    `db:"source_url"`
	LastUsedListID *uuid.UUID `db:"last_used_list_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.Text {
	return &domain.Text{
		ID:             r.ID,
		UserID:         r.UserID,
		Name:           r.Name,
		Content:        r.Content,
		EbookKey:       r.EbookKey,
		SourceURL:      r.SourceURL,
		LastUsedListID: r.LastUsedListID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Repo provides text persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new text repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a text with its content, scoped to userID.
func (r *Repo) GetByID(ctx context.Context, userID, textID uuid.UUID) (*domain.Text, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": textID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get text: %w", err)
	}

	return r.getOne(ctx, textID, sql, args)
}

// List returns a user's texts newest first, without content.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Text, error) {
	sql, args, err := postgres.Builder.
		Select(summaryColumns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list texts: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list texts: %w", err)
	}

	texts := make([]*domain.Text, len(rows))
	for i, rw := range rows {
		texts[i] = rw.toDomain()
	}

	return texts, nil
}

// Create inserts a text.
func (r *Repo) Create(ctx context.Context, t *domain.Text) (*domain.Text, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.UserID, t.Name, t.Content, t.EbookKey, t.SourceURL,
			t.LastUsedListID, t.CreatedAt, t.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create text: %w", err)
	}

	return r.getOne(ctx, t.ID, sql, args)
}

// UpdateName renames a text.
func (r *Repo) UpdateName(ctx context.Context, userID, textID uuid.UUID, name string) (*domain.Text, error) {
	return r.update(ctx, userID, textID, map[string]any{"name": name})
}

// UpdateContent replaces the inline content of a text.
func (r *Repo) UpdateContent(ctx context.Context, userID, textID uuid.UUID, content string) (*domain.Text, error) {
	return r.update(ctx, userID, textID, map[string]any{"content": content})
}

// SetLastUsedList records the list most recently used while reading the text.
// A nil listID clears it.
func (r *Repo) SetLastUsedList(ctx context.Context, userID, textID uuid.UUID, listID *uuid.UUID) (*domain.Text, error) {
	return r.update(ctx, userID, textID, map[string]any{"last_used_list_id": listID})
}

// Delete removes a text and returns the deleted row so the caller can clean up
// attached storage.
func (r *Repo) Delete(ctx context.Context, userID, textID uuid.UUID) (*domain.Text, error) {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": textID, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete text: %w", err)
	}

	return r.getOne(ctx, textID, sql, args)
}

// EbookKeys returns the storage key of every e-book text across all users.
func (r *Repo) EbookKeys(ctx context.Context) ([]string, error) {
	sql, args, err := postgres.Builder.
		Select("ebook_key").
		From(table).
		Where(squirrel.NotEq{"ebook_key": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ebook keys: %w", err)
	}

	var keys []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &keys, sql, args...); err != nil {
		return nil, fmt.Errorf("ebook keys: %w", err)
	}
	return keys, nil
}

func (r *Repo) update(ctx context.Context, userID, textID uuid.UUID, set map[string]any) (*domain.Text, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": textID, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update text: %w", err)
	}

	return r.getOne(ctx, textID, sql, args)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, sql string, args []any) (*domain.Text, error) {
	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "text", id)
	}
	return out.toDomain(), nil
}
