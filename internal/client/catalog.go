package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

// Text is a text as the server reports it. Content is empty in listings and
// for e-book texts.
type Text struct {
	ID             uuid.UUID
	Name           string
	Content        string
	IsEbook        bool
	EbookURL       string
	SourceURL      string
	LastUsedListID uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// List is a flashcard list together with its card count.
type List struct {
	ID        uuid.UUID
	Name      string
	CardCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type textWire struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Content        string     `json:"content"`
	IsEbook        bool       `json:"isEbook"`
	EbookURL       string     `json:"ebookUrl"`
	SourceURL      *string    `json:"sourceUrl"`
	LastUsedListID *uuid.UUID `json:"lastUsedListId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (w textWire) toText() *Text {
	t := &Text{
		ID:        w.ID,
		Name:      w.Name,
		Content:   w.Content,
		IsEbook:   w.IsEbook,
		EbookURL:  w.EbookURL,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if w.SourceURL != nil {
		t.SourceURL = *w.SourceURL
	}
	if w.LastUsedListID != nil {
		t.LastUsedListID = *w.LastUsedListID
	}
	return t
}

type listWire struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CardCount *int      `json:"cardCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (w listWire) toList() *List {
	l := &List{ID: w.ID, Name: w.Name, CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
	if w.CardCount != nil {
		l.CardCount = *w.CardCount
	}
	return l
}

type flashcardWire struct {
	ID        uuid.UUID `json:"id"`
	ListID    uuid.UUID `json:"listId"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w flashcardWire) toFlashcard() *domain.Flashcard {
	return &domain.Flashcard{
		ID:        w.ID,
		ListID:    w.ListID,
		Front:     w.Front,
		Back:      w.Back,
		CreatedAt: w.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Texts
// ---------------------------------------------------------------------------

// ListTexts returns the user's texts, newest first.
func (c *Client) ListTexts(ctx context.Context) ([]Text, error) {
	var wire []textWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/texts", nil, &wire); err != nil {
		return nil, fmt.Errorf("list texts: %w", err)
	}
	out := make([]Text, len(wire))
	for i, w := range wire {
		out[i] = *w.toText()
	}
	return out, nil
}

// GetText returns one text with its content.
func (c *Client) GetText(ctx context.Context, id uuid.UUID) (*Text, error) {
	var wire textWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/texts/"+id.String(), nil, &wire); err != nil {
		return nil, fmt.Errorf("get text: %w", err)
	}
	return wire.toText(), nil
}

// CreateText stores a plain text.
func (c *Client) CreateText(ctx context.Context, name, content string) (*Text, error) {
	in := map[string]string{"name": name, "content": content}
	var wire textWire
	if err := c.doJSON(ctx, http.MethodPost, "/api/texts", in, &wire); err != nil {
		return nil, fmt.Errorf("create text: %w", err)
	}
	return wire.toText(), nil
}

// ImportText asks the server to fetch an article and store it as a text.
// An empty name lets the server use the article title.
func (c *Client) ImportText(ctx context.Context, rawURL, name string) (*Text, error) {
	in := map[string]string{"url": rawURL}
	if name != "" {
		in["name"] = name
	}
	var wire textWire
	if err := c.doJSON(ctx, http.MethodPost, "/api/texts/import", in, &wire); err != nil {
		return nil, fmt.Errorf("import text: %w", err)
	}
	return wire.toText(), nil
}

// UploadEbook uploads an .epub file as a new text.
func (c *Client) UploadEbook(ctx context.Context, name, filename string, file io.Reader) (*Text, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("name", name); err != nil {
		return nil, fmt.Errorf("upload ebook: %w", err)
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("upload ebook: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("upload ebook: read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("upload ebook: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/texts/ebook", &buf)
	if err != nil {
		return nil, fmt.Errorf("upload ebook: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var wire textWire
	if err := c.do(req, &wire); err != nil {
		return nil, fmt.Errorf("upload ebook: %w", err)
	}
	return wire.toText(), nil
}

// RenameText changes a text's name.
func (c *Client) RenameText(ctx context.Context, id uuid.UUID, name string) (*Text, error) {
	var wire textWire
	if err := c.doJSON(ctx, http.MethodPatch, "/api/texts/"+id.String(), map[string]string{"name": name}, &wire); err != nil {
		return nil, fmt.Errorf("rename text: %w", err)
	}
	return wire.toText(), nil
}

// UpdateContent replaces a plain text's content.
func (c *Client) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*Text, error) {
	var wire textWire
	if err := c.doJSON(ctx, http.MethodPut, "/api/texts/"+id.String()+"/content", map[string]string{"content": content}, &wire); err != nil {
		return nil, fmt.Errorf("update text content: %w", err)
	}
	return wire.toText(), nil
}

// SetLastUsedList records the list last saved into while reading a text.
// uuid.Nil clears it.
func (c *Client) SetLastUsedList(ctx context.Context, textID, listID uuid.UUID) error {
	in := map[string]*string{"listId": nil}
	if listID != uuid.Nil {
		s := listID.String()
		in["listId"] = &s
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/texts/"+textID.String()+"/last-list", in, nil); err != nil {
		return fmt.Errorf("set last used list: %w", err)
	}
	return nil
}

// DeleteText removes a text.
func (c *Client) DeleteText(ctx context.Context, id uuid.UUID) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/texts/"+id.String(), nil, nil); err != nil {
		return fmt.Errorf("delete text: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

// ListLists returns the user's flashcard lists in name order.
func (c *Client) ListLists(ctx context.Context) ([]List, error) {
	var wire []listWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/lists", nil, &wire); err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	out := make([]List, len(wire))
	for i, w := range wire {
		out[i] = *w.toList()
	}
	return out, nil
}

// GetList returns one list.
func (c *Client) GetList(ctx context.Context, id uuid.UUID) (*List, error) {
	var wire listWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/lists/"+id.String(), nil, &wire); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	return wire.toList(), nil
}

// CreateList creates a flashcard list.
func (c *Client) CreateList(ctx context.Context, name string) (*List, error) {
	var wire listWire
	if err := c.doJSON(ctx, http.MethodPost, "/api/lists", map[string]string{"name": name}, &wire); err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return wire.toList(), nil
}

// RenameList changes a list's name.
func (c *Client) RenameList(ctx context.Context, id uuid.UUID, name string) (*List, error) {
	var wire listWire
	if err := c.doJSON(ctx, http.MethodPatch, "/api/lists/"+id.String(), map[string]string{"name": name}, &wire); err != nil {
		return nil, fmt.Errorf("rename list: %w", err)
	}
	return wire.toList(), nil
}

// DeleteList removes a list and its flashcards.
func (c *Client) DeleteList(ctx context.Context, id uuid.UUID) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/lists/"+id.String(), nil, nil); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Flashcards
// ---------------------------------------------------------------------------

// ListFlashcards returns the cards of a list.
func (c *Client) ListFlashcards(ctx context.Context, listID uuid.UUID) ([]domain.Flashcard, error) {
	var wire []flashcardWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/lists/"+listID.String()+"/flashcards", nil, &wire); err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	out := make([]domain.Flashcard, len(wire))
	for i, w := range wire {
		out[i] = *w.toFlashcard()
	}
	return out, nil
}

// CreateFlashcard stores one card in a list. It makes exactly one request.
func (c *Client) CreateFlashcard(ctx context.Context, listID uuid.UUID, front, back string) (*domain.Flashcard, error) {
	in := map[string]string{"front": front, "back": back}
	var wire flashcardWire
	if err := c.doJSON(ctx, http.MethodPost, "/api/lists/"+listID.String()+"/flashcards", in, &wire); err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}
	return wire.toFlashcard(), nil
}

// UpdateFlashcard replaces a card's front and back.
func (c *Client) UpdateFlashcard(ctx context.Context, id uuid.UUID, front, back string) (*domain.Flashcard, error) {
	in := map[string]string{"front": front, "back": back}
	var wire flashcardWire
	if err := c.doJSON(ctx, http.MethodPut, "/api/flashcards/"+id.String(), in, &wire); err != nil {
		return nil, fmt.Errorf("update flashcard: %w", err)
	}
	return wire.toFlashcard(), nil
}

// DeleteFlashcard removes a card.
func (c *Client) DeleteFlashcard(ctx context.Context, id uuid.UUID) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/flashcards/"+id.String(), nil, nil); err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}
	return nil
}
