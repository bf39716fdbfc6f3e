package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
	"github.com/heartmarshall/lingoreader-backend/internal/service/translation"
)

type translationService interface {
	Translate(ctx context.Context, input translation.TranslateInput) (string, error)
	Languages() []domain.Language
}

// TranslateHandler serves the translation endpoint and the language table.
type TranslateHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translationService, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{svc: svc, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Word           string `json:"word"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage"`
}

type translateResponse struct {
	Translation *string `json:"translation,omitempty"`
}

type languageResponse struct {
	Code       string `json:"code"`
	NativeName string `json:"nativeName"`
}

// Translate handles POST /api/translate. A miss is a 200 without a
// translation field.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.svc.Translate(r.Context(), translation.TranslateInput{
		Text:           req.Word,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp translateResponse
	if out != "" {
		resp.Translation = &out
	}
	writeJSON(w, http.StatusOK, resp)
}

// Languages handles GET /api/languages.
func (h *TranslateHandler) Languages(w http.ResponseWriter, r *http.Request) {
	langs := h.svc.Languages()
	out := make([]languageResponse, len(langs))
	for i, l := range langs {
		out[i] = languageResponse{Code: l.Code, NativeName: l.NativeName}
	}
	writeJSON(w, http.StatusOK, out)
}
