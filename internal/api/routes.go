package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/", s.handleDeck)
	r.Post("/flip", s.handleFlip)
	r.Post("/next", s.handleNext)
	r.Post("/previous", s.handlePrevious)
	r.Post("/shuffle", s.handleShuffle)
	r.Post("/reset", s.handleReset)
	r.Post("/reveal", s.handleReveal)
	r.Post("/view", s.handleToggleView)
	r.Post("/grid/{id}/flip", s.handleGridFlip)

	r.Post("/editor", s.handleToggleEditor)
	r.Post("/editor/cancel", s.handleCancelEdit)
	r.Post("/cards", s.handleAddCard)
	r.Post("/cards/{id}/edit", s.handleBeginEdit)
	r.Post("/cards/{id}", s.handleUpdateCard)
	r.Post("/cards/{id}/delete", s.handleDeleteCard)

	r.Get("/export", s.handleExport)
	r.Post("/import", s.handleImport)

	r.Get("/api/state", s.handleAPIState)
	r.Get("/api/cards", s.handleAPICards)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))
	return r
}
