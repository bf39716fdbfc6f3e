// Package list implements the flashcard list repository using PostgreSQL.
package list

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

const table = "flashcard_lists"

var columns = []string{"id", "user_id", "name", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.FlashcardList {
	return &domain.FlashcardList{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides flashcard list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a list by primary key scoped to userID.
// Returns domain.ErrNotFound if the list does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.FlashcardList, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": listID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get list: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard_list", listID)
	}

	return out.toDomain(), nil
}

// List returns all lists of a user ordered by name.
// Returns an empty slice (not nil) when the user has no lists.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.FlashcardList, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("lower(name)", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lists: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list flashcard lists: %w", err)
	}

	lists := make([]*domain.FlashcardList, len(rows))
	for i, rw := range rows {
		lists[i] = rw.toDomain()
	}

	return lists, nil
}

// Create inserts a new list. Returns domain.ErrAlreadyExists when the user
// already has a list with the same name (case-insensitive).
func (r *Repo) Create(ctx context.Context, l *domain.FlashcardList) (*domain.FlashcardList, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(l.ID, l.UserID, l.Name, l.CreatedAt, l.UpdatedAt).
		Suffix("RETURNING id, user_id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create list: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard_list", l.ID)
	}

	return out.toDomain(), nil
}

// Rename sets a new name and bumps updated_at.
func (r *Repo) Rename(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.FlashcardList, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("name", name).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": listID, "user_id": userID}).
		Suffix("RETURNING id, user_id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rename list: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard_list", listID)
	}

	return out.toDomain(), nil
}

// Delete removes a list. Returns domain.ErrNotFound when nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": listID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete list: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "flashcard_list", listID)
	}

	return postgres.ExpectAffected(tag, "flashcard_list", listID)
}
