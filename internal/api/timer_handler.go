package api

import (
	"log/slog"
	"net/http"

	"github.com/scholars-chronicle/api/internal/api/shared"
	"github.com/scholars-chronicle/api/internal/appdata"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/service"
)

// TimerHandler serves the study-timer endpoints. The countdown itself
// runs client-side; the server only hands out presets and records
// finished sessions.
type TimerHandler struct {
	timers service.TimerService
	logger *slog.Logger
}

// NewTimerHandler creates a new TimerHandler with the given dependencies.
func NewTimerHandler(timers service.TimerService, logger *slog.Logger) *TimerHandler {
	if timers == nil {
		panic("timers cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TimerHandler{
		timers: timers,
		logger: logger.With(slog.String("component", "timer_handler")),
	}
}

// Presets handles GET /timer/presets.
func (h *TimerHandler) Presets(w http.ResponseWriter, r *http.Request) {
	short, long := appdata.BreakDurations()

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"presets":    appdata.TimerPresets(),
		"shortBreak": short,
		"longBreak":  long,
	})
}

// Sessions handles GET /timer/sessions.
func (h *TimerHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.timers.Sessions(r.Context())
	if sessions == nil {
		sessions = []domain.TimerSession{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessions)
}

// RecordSession handles POST /timer/sessions.
func (h *TimerHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	var req RecordSessionRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.timers.Record(r.Context(), req.Preset, req.Minutes)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, session)
}
