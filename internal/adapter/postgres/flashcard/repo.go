// Package flashcard implements the flashcard repository using PostgreSQL.
package flashcard

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

const (
	table     = "flashcards"
	returning = "RETURNING id, user_id, list_id, front, back, created_at"
)

var columns = []string{"id", "user_id", "list_id", "front", "back", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ListID    uuid.UUID `db:"list_id"`
	Front     string    `db:"front"`
	Back      string    `db:"back"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Flashcard {
	return &domain.Flashcard{
		ID:        r.ID,
		UserID:    r.UserID,
		ListID:    r.ListID,
		Front:     r.Front,
		Back:      r.Back,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a flashcard. Returns domain.ErrNotFound when the list does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.UserID, c.ListID, c.Front, c.Back, c.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create flashcard: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", c.ID)
	}

	return out.toDomain(), nil
}

// GetByID returns a flashcard scoped to userID.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": cardID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get flashcard: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", cardID)
	}

	return out.toDomain(), nil
}

// ListByList returns the flashcards of a list, newest first.
func (r *Repo) ListByList(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Flashcard, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"list_id": listID, "user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list flashcards: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	cards := make([]*domain.Flashcard, len(rows))
	for i, rw := range rows {
		cards[i] = rw.toDomain()
	}

	return cards, nil
}

// Update replaces the front and back of a flashcard.
func (r *Repo) Update(ctx context.Context, userID, cardID uuid.UUID, front, back string) (*domain.Flashcard, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("front", front).
		Set("back", back).
		Where(squirrel.Eq{"id": cardID, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update flashcard: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", cardID)
	}

	return out.toDomain(), nil
}

// Delete removes a flashcard. Returns domain.ErrNotFound when nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": cardID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete flashcard: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "flashcard", cardID)
	}

	return postgres.ExpectAffected(tag, "flashcard", cardID)
}

// DeleteByList removes every flashcard of a list and returns how many were removed.
func (r *Repo) DeleteByList(ctx context.Context, userID, listID uuid.UUID) (int64, error) {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"list_id": listID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete flashcards by list: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "flashcard_list", listID)
	}

	return tag.RowsAffected(), nil
}

// CountByLists returns the number of flashcards per list for a user.
// Lists without flashcards are absent from the map.
func (r *Repo) CountByLists(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error) {
	sql, args, err := postgres.Builder.
		Select("list_id", "count(*) AS total").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("list_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count flashcards: %w", err)
	}

	var rows []struct {
		ListID uuid.UUID `db:"list_id"`
		Total  int       `db:"total"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("count flashcards: %w", err)
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, rw := range rows {
		counts[rw.ListID] = rw.Total
	}

	return counts, nil
}
