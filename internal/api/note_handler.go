package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scholars-chronicle/api/internal/api/shared"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/service"
)

// NoteHandler serves the study-note endpoints.
type NoteHandler struct {
	app    *service.App
	logger *slog.Logger
}

// NewNoteHandler creates a new NoteHandler with the given dependencies.
func NewNoteHandler(app *service.App, logger *slog.Logger) *NoteHandler {
	if app == nil {
		panic("app cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &NoteHandler{
		app:    app,
		logger: logger.With(slog.String("component", "note_handler")),
	}
}

// List handles GET /notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes := h.app.Notes()
	if notes == nil {
		notes = []domain.Note{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notes)
}

// Create handles POST /notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	note, err := h.app.AddNote(r.Context(), req.Title, req.Subject, req.Topic, req.URL)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, note)
}

// Delete handles DELETE /notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")

	if err := h.app.DeleteNote(r.Context(), noteID); err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
