package text

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
	"github.com/heartmarshall/lingoreader-backend/pkg/ctxutil"
)

// ListTexts returns the user's texts, newest first. Content is not loaded.
func (s *Service) ListTexts(ctx context.Context) ([]*domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	texts, err := s.texts.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list texts: %w", err)
	}
	return texts, nil
}

// GetText returns a text with its content. E-book texts carry a presigned
// download URL; when storage is unavailable the URL is left empty.
func (s *Service) GetText(ctx context.Context, textID uuid.UUID) (*TextDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.texts.GetByID(ctx, userID, textID)
	if err != nil {
		return nil, fmt.Errorf("get text: %w", err)
	}

	detail := &TextDetail{Text: *t}
	if t.IsEbook() && s.storage != nil {
		link, err := s.storage.PresignURL(ctx, *t.EbookKey)
		if err != nil {
			s.log.WarnContext(ctx, "presign ebook failed",
				slog.String("text_id", t.ID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			detail.EbookURL = link
		}
	}

	return detail, nil
}

// CreateText stores a new plain text.
func (s *Service) CreateText(ctx context.Context, input CreateTextInput) (*domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.create(ctx, &domain.Text{
		UserID:  userID,
		Name:    domain.NormalizeName(input.Name),
		Content: input.Content,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "text created",
		slog.String("user_id", userID.String()),
		slog.String("text_id", t.ID.String()),
	)
	return t, nil
}

// ImportText fetches a web page, extracts its readable article and stores it
// as a new text.
func (s *Service) ImportText(ctx context.Context, input ImportTextInput) (*domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	article, err := s.fetcher.Fetch(ctx, strings.TrimSpace(input.URL))
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}

	name := domain.NormalizeName(input.Name)
	if name == "" {
		name = truncateName(article.Title)
	}
	if name == "" {
		name = article.URL
	}

	content := article.Text
	if len(content) > MaxContentBytes {
		return nil, domain.NewValidationError("url", "article exceeds 1 MiB")
	}

	source := article.URL
	t, err := s.create(ctx, &domain.Text{
		UserID:    userID,
		Name:      truncateName(name),
		Content:   content,
		SourceURL: &source,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "text imported",
		slog.String("user_id", userID.String()),
		slog.String("text_id", t.ID.String()),
		slog.String("url", source),
	)
	return t, nil
}

// UploadEbook stores an e-book file and creates a text that references it.
func (s *Service) UploadEbook(ctx context.Context, input UploadEbookInput) (*domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if s.storage == nil {
		return nil, fmt.Errorf("ebook storage: %w", domain.ErrUnavailable)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	textID := uuid.New()
	key := fmt.Sprintf("%s%s/%s.epub", EbookKeyPrefix, userID, textID)

	if err := s.storage.Put(ctx, key, ebookContentType, input.Body, input.Size); err != nil {
		return nil, fmt.Errorf("store ebook: %w", err)
	}

	t, err := s.create(ctx, &domain.Text{
		ID:       textID,
		UserID:   userID,
		Name:     domain.NormalizeName(input.Name),
		EbookKey: &key,
	})
	if err != nil {
		s.deleteObject(ctx, key)
		return nil, err
	}

	s.log.InfoContext(ctx, "ebook uploaded",
		slog.String("user_id", userID.String()),
		slog.String("text_id", t.ID.String()),
		slog.Int64("size", input.Size),
	)
	return t, nil
}

// RenameText changes the name of a text.
func (s *Service) RenameText(ctx context.Context, input RenameTextInput) (*domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.texts.UpdateName(ctx, userID, input.TextID, domain.NormalizeName(input.Name))
	if err != nil {
		return nil, fmt.Errorf("rename text: %w", err)
	}
	return t, nil
}

// UpdateContent saves edited content of a plain text. E-book texts have no
// editable content.
func (s *Service) UpdateContent(ctx context.Context, input UpdateContentInput) (*domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.texts.GetByID(ctx, userID, input.TextID)
	if err != nil {
		return nil, fmt.Errorf("get text: %w", err)
	}
	if existing.IsEbook() {
		return nil, domain.NewValidationError("content", "e-book texts cannot be edited")
	}

	t, err := s.texts.UpdateContent(ctx, userID, input.TextID, input.Content)
	if err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}

	s.log.InfoContext(ctx, "text content updated",
		slog.String("user_id", userID.String()),
		slog.String("text_id", t.ID.String()),
	)
	return t, nil
}

// SetLastUsedList remembers which list the user last saved flashcards into
// while reading the text. uuid.Nil clears it.
func (s *Service) SetLastUsedList(ctx context.Context, textID, listID uuid.UUID) (*domain.Text, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var ref *uuid.UUID
	if listID != uuid.Nil {
		if _, err := s.lists.GetByID(ctx, userID, listID); err != nil {
			return nil, fmt.Errorf("get list: %w", err)
		}
		ref = &listID
	}

	t, err := s.texts.SetLastUsedList(ctx, userID, textID, ref)
	if err != nil {
		return nil, fmt.Errorf("set last used list: %w", err)
	}
	return t, nil
}

// DeleteText removes a text and its e-book file. A failure to remove the file
// is logged; the text is gone either way.
func (s *Service) DeleteText(ctx context.Context, textID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	t, err := s.texts.Delete(ctx, userID, textID)
	if err != nil {
		return fmt.Errorf("delete text: %w", err)
	}

	if t.IsEbook() {
		s.deleteObject(ctx, *t.EbookKey)
	}

	s.log.InfoContext(ctx, "text deleted",
		slog.String("user_id", userID.String()),
		slog.String("text_id", textID.String()),
	)
	return nil
}

func (s *Service) create(ctx context.Context, t *domain.Text) (*domain.Text, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := s.texts.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create text: %w", err)
	}
	return created, nil
}

func (s *Service) deleteObject(ctx context.Context, key string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.ErrorContext(ctx, "delete ebook object failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
