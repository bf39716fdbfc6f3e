package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
	"github.com/heartmarshall/lingoreader-backend/internal/service/flashcard"
)

type flashcardService interface {
	ListLists(ctx context.Context) ([]flashcard.ListSummary, error)
	GetList(ctx context.Context, listID uuid.UUID) (*domain.FlashcardList, error)
	CreateList(ctx context.Context, input flashcard.CreateListInput) (*domain.FlashcardList, error)
	RenameList(ctx context.Context, input flashcard.RenameListInput) (*domain.FlashcardList, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	CreateFlashcard(ctx context.Context, input flashcard.CreateFlashcardInput) (*domain.Flashcard, error)
	ListFlashcards(ctx context.Context, listID uuid.UUID) ([]*domain.Flashcard, error)
	UpdateFlashcard(ctx context.Context, input flashcard.UpdateFlashcardInput) (*domain.Flashcard, error)
	DeleteFlashcard(ctx context.Context, cardID uuid.UUID) error
}

// FlashcardHandler serves list and flashcard endpoints.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type listRequest struct {
	Name string `json:"name"`
}

type flashcardRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type listResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CardCount *int      `json:"cardCount,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type flashcardResponse struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListLists handles GET /api/lists.
func (h *FlashcardHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]listResponse, len(lists))
	for i := range lists {
		out[i] = toListResponse(&lists[i].FlashcardList)
		out[i].CardCount = &lists[i].CardCount
	}
	writeJSON(w, http.StatusOK, out)
}

// GetList handles GET /api/lists/{id}.
func (h *FlashcardHandler) GetList(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.svc.GetList(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(list))
}

// CreateList handles POST /api/lists.
func (h *FlashcardHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	list, err := h.svc.CreateList(r.Context(), flashcard.CreateListInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListResponse(list))
}

// RenameList handles PATCH /api/lists/{id}.
func (h *FlashcardHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req listRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	list, err := h.svc.RenameList(r.Context(), flashcard.RenameListInput{ListID: listID, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(list))
}

// DeleteList handles DELETE /api/lists/{id}.
func (h *FlashcardHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteList(r.Context(), listID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFlashcards handles GET /api/lists/{id}/flashcards.
func (h *FlashcardHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	cards, err := h.svc.ListFlashcards(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]flashcardResponse, len(cards))
	for i, c := range cards {
		out[i] = toFlashcardResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateFlashcard handles POST /api/lists/{id}/flashcards.
func (h *FlashcardHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req flashcardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	card, err := h.svc.CreateFlashcard(r.Context(), flashcard.CreateFlashcardInput{
		ListID: listID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFlashcardResponse(card))
}

// UpdateFlashcard handles PUT /api/flashcards/{id}.
func (h *FlashcardHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req flashcardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	card, err := h.svc.UpdateFlashcard(r.Context(), flashcard.UpdateFlashcardInput{
		CardID: cardID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// DeleteFlashcard handles DELETE /api/flashcards/{id}.
func (h *FlashcardHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteFlashcard(r.Context(), cardID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toListResponse(l *domain.FlashcardList) listResponse {
	return listResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toFlashcardResponse(c *domain.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:        c.ID.String(),
		ListID:    c.ListID.String(),
		Front:     c.Front,
		Back:      c.Back,
		CreatedAt: c.CreatedAt,
	}
}
