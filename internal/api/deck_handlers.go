package api

import (
	"net/http"

	"github.com/vytor/flashdeck/internal/logger"
)

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering deck page")

	state := s.DeckService.State(r.Context())

	lastSaved, err := s.DeckService.LastSaved(r.Context())
	if err != nil {
		log.Warn("failed to read save time: %v", err)
	}

	s.render(w, r, "pages/deck.html", pageData{
		"state":        state,
		"last_saved":   lastSaved,
		"notice":       r.URL.Query().Get("notice"),
		"notice_level": r.URL.Query().Get("level"),
	})
}

func (s *Server) handleFlip(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.DeckService.Flip(r.Context()))
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.DeckService.Next(r.Context()))
}

func (s *Server) handlePrevious(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.DeckService.Previous(r.Context()))
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.DeckService.Shuffle(r.Context()))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.DeckService.Reset(r.Context()))
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.DeckService.Reveal(r.Context()))
}

func (s *Server) handleToggleView(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.DeckService.ToggleView(r.Context()))
}

func (s *Server) handleGridFlip(w http.ResponseWriter, r *http.Request) {
	id, err := cardIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	s.respond(w, r, s.DeckService.ToggleCardFlip(r.Context(), id))
}

func (s *Server) handleAPIState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.DeckService.State(r.Context()))
}

func (s *Server) handleAPICards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.DeckService.Cards(r.Context()))
}
