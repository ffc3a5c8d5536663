package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scholars-chronicle/api/internal/api/shared"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/service"
)

// QuestHandler serves the quest board endpoints.
type QuestHandler struct {
	app    *service.App
	logger *slog.Logger
}

// NewQuestHandler creates a new QuestHandler with the given dependencies.
func NewQuestHandler(app *service.App, logger *slog.Logger) *QuestHandler {
	if app == nil {
		panic("app cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &QuestHandler{
		app:    app,
		logger: logger.With(slog.String("component", "quest_handler")),
	}
}

// List handles GET /quests. An optional ?subject= query filters the
// board case-insensitively.
func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")

	var quests []domain.Quest
	if subject != "" {
		quests = h.app.QuestsBySubject(subject)
	} else {
		quests = h.app.Quests()
	}

	if quests == nil {
		quests = []domain.Quest{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quests)
}

// Create handles POST /quests.
func (h *QuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	quest, err := h.app.AddQuest(r.Context(), service.CreateQuestParams{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		Unit:        req.Unit,
		Topic:       req.Topic,
		Type:        domain.QuestType(req.Type),
		Difficulty:  domain.QuestDifficulty(req.Difficulty),
		XPReward:    req.XPReward,
	})
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, quest)
}

// Complete handles POST /quests/{id}/complete. Completing an
// already-completed quest succeeds without awarding XP again.
func (h *QuestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")

	quest, err := h.app.MarkQuestComplete(r.Context(), questID)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quest)
}

// Delete handles DELETE /quests/{id}.
func (h *QuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")

	if err := h.app.DeleteQuest(r.Context(), questID); err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
