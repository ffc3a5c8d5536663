package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/scholars-chronicle/api/internal/api/shared"
	"github.com/scholars-chronicle/api/internal/appdata"
)

// AppDataHandler serves the static curriculum catalogue and exam
// schedule bundled with the application.
type AppDataHandler struct {
	logger *slog.Logger
}

// NewAppDataHandler creates a new AppDataHandler.
func NewAppDataHandler(logger *slog.Logger) *AppDataHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AppDataHandler{
		logger: logger.With(slog.String("component", "appdata_handler")),
	}
}

// examEntry is one exam paper with its countdown attached.
type examEntry struct {
	appdata.ExamInfo
	Subject  string `json:"subject"`
	DaysLeft int    `json:"daysLeft"`
}

// ListSubjects handles GET /subjects.
func (h *AppDataHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, appdata.Subjects())
}

// GetSubject handles GET /subjects/{id}.
func (h *AppDataHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	subject, ok := appdata.SubjectByID(id)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Subject not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, subject)
}

// ListExams handles GET /exams, returning every scheduled paper with the
// number of days remaining until it sits.
func (h *AppDataHandler) ListExams(w http.ResponseWriter, r *http.Request) {
	today := time.Now()

	entries := []examEntry{}
	for subjectID, papers := range appdata.ExamSchedule() {
		for _, paper := range papers {
			entry := examEntry{
				ExamInfo: paper,
				Subject:  appdata.FormatSubjectName(subjectID),
			}
			if date, err := time.Parse("2006-01-02", paper.Date); err == nil {
				entry.DaysLeft = appdata.DaysUntil(date, today)
			}
			entries = append(entries, entry)
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entries)
}
