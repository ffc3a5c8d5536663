package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/scholars-chronicle/api/internal/api/shared"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/service"
)

// FlashcardHandler serves the deck and card endpoints.
type FlashcardHandler struct {
	app    *service.App
	logger *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler with the given dependencies.
func NewFlashcardHandler(app *service.App, logger *slog.Logger) *FlashcardHandler {
	if app == nil {
		panic("app cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &FlashcardHandler{
		app:    app,
		logger: logger.With(slog.String("component", "flashcard_handler")),
	}
}

// ListDecks handles GET /decks.
func (h *FlashcardHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks := h.app.FlashcardDecks()
	if decks == nil {
		decks = []domain.FlashcardDeck{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, decks)
}

// CreateDeck handles POST /decks.
func (h *FlashcardHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req CreateDeckRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	deck, err := h.app.AddFlashcardDeck(r.Context(), req.Name, req.Subject, req.Unit, req.Topic)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, deck)
}

// UpdateDeck handles PUT /decks/{id}, renaming or re-filing the deck
// while leaving its cards untouched.
func (h *FlashcardHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "id")

	var req UpdateDeckRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	deck := h.findDeck(deckID)
	if deck == nil {
		RespondWithServiceError(w, r, service.ErrDeckNotFound)
		return
	}

	deck.Name = req.Name
	deck.Subject = req.Subject
	deck.Unit = req.Unit
	deck.Topic = req.Topic

	if err := h.app.UpdateFlashcardDeck(r.Context(), deck); err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deck)
}

// DeleteDeck handles DELETE /decks/{id}.
func (h *FlashcardHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "id")

	if err := h.app.DeleteFlashcardDeck(r.Context(), deckID); err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddCard handles POST /decks/{id}/cards.
func (h *FlashcardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "id")

	var req AddCardRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.app.AddFlashcard(r.Context(), deckID, req.Front, req.Back)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, card)
}

// DeleteCard handles DELETE /decks/{id}/cards/{cardId}.
func (h *FlashcardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "id")
	cardID := chi.URLParam(r, "cardId")

	if err := h.app.DeleteFlashcard(r.Context(), deckID, cardID); err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ImportCards handles POST /decks/{id}/import, parsing pasted
// comma-separated text into cards and appending them as one batch.
func (h *FlashcardHandler) ImportCards(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "id")

	var req ImportCardsRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	rows, skipped := parseImportRows(req.Text)

	if _, err := h.app.ImportFlashcards(r.Context(), deckID, rows); err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	h.logger.Info("card import accepted",
		slog.String("deck_id", deckID),
		slog.Int("imported", len(rows)),
		slog.Int("skipped", skipped))

	shared.RespondWithJSON(w, r, http.StatusOK, ImportCardsResponse{
		Imported: len(rows),
		Skipped:  skipped,
	})
}

// CompleteStudyPass handles POST /decks/{id}/study-pass.
func (h *FlashcardHandler) CompleteStudyPass(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "id")

	deck, err := h.app.CompleteStudyPass(r.Context(), deckID)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deck)
}

// findDeck returns a copy of the deck with the given ID, or nil.
func (h *FlashcardHandler) findDeck(deckID string) *domain.FlashcardDeck {
	for _, deck := range h.app.FlashcardDecks() {
		if deck.ID == deckID {
			d := deck
			return &d
		}
	}
	return nil
}

// parseImportRows splits pasted import text into front/back rows, one per
// line with the first comma as the separator. Blank lines and lines
// without a comma are skipped rather than failing the whole paste.
func parseImportRows(text string) ([]service.ImportRow, int) {
	var rows []service.ImportRow
	skipped := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		front, back, found := strings.Cut(line, ",")
		if !found {
			skipped++
			continue
		}

		front = strings.TrimSpace(front)
		back = strings.TrimSpace(back)
		if front == "" || back == "" {
			skipped++
			continue
		}

		rows = append(rows, service.ImportRow{Front: front, Back: back})
	}

	return rows, skipped
}
