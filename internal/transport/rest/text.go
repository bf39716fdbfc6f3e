package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
	"github.com/heartmarshall/lingoreader-backend/internal/service/text"
)

type textService interface {
	ListTexts(ctx context.Context) ([]*domain.Text, error)
	GetText(ctx context.Context, textID uuid.UUID) (*text.TextDetail, error)
	CreateText(ctx context.Context, input text.CreateTextInput) (*domain.Text, error)
	ImportText(ctx context.Context, input text.ImportTextInput) (*domain.Text, error)
	UploadEbook(ctx context.Context, input text.UploadEbookInput) (*domain.Text, error)
	RenameText(ctx context.Context, input text.RenameTextInput) (*domain.Text, error)
	UpdateContent(ctx context.Context, input text.UpdateContentInput) (*domain.Text, error)
	SetLastUsedList(ctx context.Context, textID, listID uuid.UUID) (*domain.Text, error)
	DeleteText(ctx context.Context, textID uuid.UUID) error
}

// TextHandler serves text endpoints.
type TextHandler struct {
	svc            textService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewTextHandler creates a TextHandler. maxUploadBytes caps e-book uploads.
func NewTextHandler(svc textService, maxUploadBytes int64, logger *slog.Logger) *TextHandler {
	return &TextHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "text"),
	}
}

type createTextRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type importTextRequest struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

type renameTextRequest struct {
	Name string `json:"name"`
}

type contentRequest struct {
	Content string `json:"content"`
}

type lastListRequest struct {
	ListID *string `json:"listId"`
}

type textResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Content        string    `json:"content,omitempty"`
	IsEbook        bool      `json:"isEbook"`
	EbookURL       string    `json:"ebookUrl,omitempty"`
	SourceURL      *string   `json:"sourceUrl,omitempty"`
	LastUsedListID *string   `json:"lastUsedListId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ListTexts handles GET /api/texts.
func (h *TextHandler) ListTexts(w http.ResponseWriter, r *http.Request) {
	texts, err := h.svc.ListTexts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]textResponse, len(texts))
	for i, t := range texts {
		out[i] = toTextResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetText handles GET /api/texts/{id}.
func (h *TextHandler) GetText(w http.ResponseWriter, r *http.Request) {
	textID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.GetText(r.Context(), textID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toTextResponse(&detail.Text)
	resp.EbookURL = detail.EbookURL
	writeJSON(w, http.StatusOK, resp)
}

// CreateText handles POST /api/texts.
func (h *TextHandler) CreateText(w http.ResponseWriter, r *http.Request) {
	var req createTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.CreateText(r.Context(), text.CreateTextInput{Name: req.Name, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTextResponse(t))
}

// ImportText handles POST /api/texts/import.
func (h *TextHandler) ImportText(w http.ResponseWriter, r *http.Request) {
	var req importTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.ImportText(r.Context(), text.ImportTextInput{URL: req.URL, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTextResponse(t))
}

// UploadEbook handles POST /api/texts/ebook as multipart/form-data with
// fields "name" and "file".
func (h *TextHandler) UploadEbook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(h.log, w, r, fmt.Errorf("ebook over %d bytes: %w", tooLarge.Limit, domain.ErrTooLarge))
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	t, err := h.svc.UploadEbook(r.Context(), text.UploadEbookInput{
		Name:     r.FormValue("name"),
		Filename: header.Filename,
		Body:     file,
		Size:     header.Size,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTextResponse(t))
}

// RenameText handles PATCH /api/texts/{id}.
func (h *TextHandler) RenameText(w http.ResponseWriter, r *http.Request) {
	textID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req renameTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.RenameText(r.Context(), text.RenameTextInput{TextID: textID, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTextResponse(t))
}

// UpdateContent handles PUT /api/texts/{id}/content.
func (h *TextHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	textID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req contentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.UpdateContent(r.Context(), text.UpdateContentInput{TextID: textID, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTextResponse(t))
}

// SetLastUsedList handles PUT /api/texts/{id}/last-list. A null listId
// clears the value.
func (h *TextHandler) SetLastUsedList(w http.ResponseWriter, r *http.Request) {
	textID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req lastListRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	listID := uuid.Nil
	if req.ListID != nil {
		id, err := uuid.Parse(*req.ListID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid listId")
			return
		}
		listID = id
	}

	t, err := h.svc.SetLastUsedList(r.Context(), textID, listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTextResponse(t))
}

// DeleteText handles DELETE /api/texts/{id}.
func (h *TextHandler) DeleteText(w http.ResponseWriter, r *http.Request) {
	textID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteText(r.Context(), textID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toTextResponse(t *domain.Text) textResponse {
	resp := textResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Content:   t.Content,
		IsEbook:   t.IsEbook(),
		SourceURL: t.SourceURL,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.LastUsedListID != nil {
		s := t.LastUsedListID.String()
		resp.LastUsedListID = &s
	}
	return resp
}
