// Package rest implements the JSON HTTP API.
package rest

import (
	"net/http"

	"github.com/heartmarshall/lingoreader-backend/internal/transport/middleware"
)

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Texts      *TextHandler
	Flashcards *FlashcardHandler
	Translate  *TranslateHandler
}

// NewRouter registers all routes. Everything under /api except the language
// table requires an authenticated user; translateLimit guards the
// translation endpoint and may be nil.
func NewRouter(h Handlers, translateLimit middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/languages", h.Translate.Languages)

	authed := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		mws = append([]middleware.Middleware{middleware.RequireUser}, mws...)
		mux.Handle(pattern, middleware.Chain(mws...)(fn))
	}

	var limit []middleware.Middleware
	if translateLimit != nil {
		limit = append(limit, translateLimit)
	}
	authed("POST /api/translate", h.Translate.Translate, limit...)

	authed("GET /api/texts", h.Texts.ListTexts)
	authed("POST /api/texts", h.Texts.CreateText)
	authed("POST /api/texts/import", h.Texts.ImportText)
	authed("POST /api/texts/ebook", h.Texts.UploadEbook)
	authed("GET /api/texts/{id}", h.Texts.GetText)
	authed("PATCH /api/texts/{id}", h.Texts.RenameText)
	authed("PUT /api/texts/{id}/content", h.Texts.UpdateContent)
	authed("PUT /api/texts/{id}/last-list", h.Texts.SetLastUsedList)
	authed("DELETE /api/texts/{id}", h.Texts.DeleteText)

	authed("GET /api/lists", h.Flashcards.ListLists)
	authed("POST /api/lists", h.Flashcards.CreateList)
	authed("GET /api/lists/{id}", h.Flashcards.GetList)
	authed("PATCH /api/lists/{id}", h.Flashcards.RenameList)
	authed("DELETE /api/lists/{id}", h.Flashcards.DeleteList)
	authed("GET /api/lists/{id}/flashcards", h.Flashcards.ListFlashcards)
	authed("POST /api/lists/{id}/flashcards", h.Flashcards.CreateFlashcard)
	authed("PUT /api/flashcards/{id}", h.Flashcards.UpdateFlashcard)
	authed("DELETE /api/flashcards/{id}", h.Flashcards.DeleteFlashcard)

	return mux
}
