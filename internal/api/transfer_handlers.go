package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/logger"
)

// maxImportBytes bounds the size of an uploaded card file.
const maxImportBytes = 5 << 20

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, filename, err := s.DeckService.Export(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContext(r.Context()).Warn("failed to write export: %v", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("import without file: %v", err)
		s.importFailed(w, r, errors.NewBadRequestError("No file selected."))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.importFailed(w, r, errors.NewBadRequestError("Could not read the uploaded file."))
		return
	}
	log.WithFields(map[string]any{"filename": header.Filename, "bytes": len(data)}).Debug("importing cards")

	n, err := s.DeckService.Import(r.Context(), data)
	if err != nil {
		s.importFailed(w, r, err)
		return
	}

	msg := fmt.Sprintf("Successfully imported %d cards!", n)
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{"imported": n, "message": msg})
		return
	}
	redirectWithNotice(w, r, msg, "info")
}

// importFailed reports a rejected import: as a JSON error to API clients,
// as a notice on the deck page to browsers.
func (s *Server) importFailed(w http.ResponseWriter, r *http.Request, err error) {
	if wantsJSON(r) {
		handleError(w, r, err)
		return
	}
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.NewInternalError(err)
	}
	logger.FromContext(r.Context()).Warn("import failed: %v", appErr)
	redirectWithNotice(w, r, appErr.Message, "error")
}

func redirectWithNotice(w http.ResponseWriter, r *http.Request, msg, level string) {
	q := url.Values{}
	q.Set("notice", msg)
	q.Set("level", level)
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}
