package api

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/services"
)

type Server struct {
	DeckService services.DeckService
	Templates   *template.Template
	Labels      models.Labels
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["labels"]; !ok {
		data["labels"] = s.Labels
	}

	log := logger.FromContext(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// respond finishes a state-changing request: JSON clients get the new
// state, browsers are sent back to the deck page.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, state models.DeckState) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, state)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func cardIDParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.FromContext(r.Context()).Warn("invalid card id: %s", idStr)
		return 0, errors.NewBadRequestError("invalid card ID")
	}
	return id, nil
}

// cardFields reads the three card fields from the submitted form. Values
// are taken as typed; a blank one is left for the deck to refuse.
func cardFields(r *http.Request) models.CardFields {
	return models.CardFields{
		PromptText:      r.FormValue("prompt"),
		TargetText:      r.FormValue("target"),
		Transliteration: r.FormValue("transliteration"),
	}
}
