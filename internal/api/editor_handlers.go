package api

import "net/http"

func (s *Server) handleToggleEditor(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.DeckService.ToggleEditor(r.Context()))
}

func (s *Server) handleCancelEdit(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.DeckService.CancelEdit(r.Context()))
}

func (s *Server) handleAddCard(w http.ResponseWriter, r *http.Request) {
	if _, err := s.DeckService.AddCard(r.Context(), cardFields(r)); err != nil {
		handleError(w, r, err)
		return
	}
	s.respond(w, r, s.DeckService.State(r.Context()))
}

func (s *Server) handleBeginEdit(w http.ResponseWriter, r *http.Request) {
	id, err := cardIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.DeckService.BeginEdit(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	s.respond(w, r, s.DeckService.State(r.Context()))
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := cardIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if _, err := s.DeckService.UpdateCard(r.Context(), id, cardFields(r)); err != nil {
		handleError(w, r, err)
		return
	}
	s.respond(w, r, s.DeckService.State(r.Context()))
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := cardIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.DeckService.DeleteCard(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	s.respond(w, r, s.DeckService.State(r.Context()))
}
