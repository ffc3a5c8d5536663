package api

import (
	"log/slog"
	"net/http"

	"github.com/scholars-chronicle/api/internal/api/shared"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/service"
)

// CharacterHandler serves the scholar character endpoints.
type CharacterHandler struct {
	app    *service.App
	logger *slog.Logger
}

// NewCharacterHandler creates a new CharacterHandler with the given dependencies.
func NewCharacterHandler(app *service.App, logger *slog.Logger) *CharacterHandler {
	if app == nil {
		panic("app cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CharacterHandler{
		app:    app,
		logger: logger.With(slog.String("component", "character_handler")),
	}
}

// Get handles GET /character.
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.app.Character())
}

// UpdateStats handles PUT /character/stats, overwriting the four stats
// wholesale.
func (h *CharacterHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatsRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	character, err := h.app.UpdateCharacterStats(r.Context(), domain.CharacterStats{
		Wisdom:     req.Wisdom,
		Focus:      req.Focus,
		Memory:     req.Memory,
		Discipline: req.Discipline,
	})
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, character)
}

// AddXP handles POST /character/xp, awarding XP outside of any quest.
func (h *CharacterHandler) AddXP(w http.ResponseWriter, r *http.Request) {
	var req AddXPRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	character, err := h.app.AddCharacterXP(r.Context(), req.Amount)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, character)
}
