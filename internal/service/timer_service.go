package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/store"
)

// TimerService keeps the append-only history of completed study-timer
// sessions. The countdown itself runs in the presentation layer; only
// finished sessions reach this engine.
type TimerService interface {
	// Record appends a completed session to the history.
	Record(ctx context.Context, preset string, minutes int) (*domain.TimerSession, error)

	// Sessions returns the session history, oldest first.
	Sessions(ctx context.Context) []domain.TimerSession
}

// Verify interface compliance at compile time
var _ TimerService = (*timerService)(nil)

// timerService implements the TimerService interface.
type timerService struct {
	slots  store.SlotStore
	now    func() time.Time
	logger *slog.Logger
}

// NewTimerService creates a new TimerService.
// If logger is nil, the default logger is used.
func NewTimerService(slots store.SlotStore, logger *slog.Logger) TimerService {
	if slots == nil {
		panic("slots cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &timerService{
		slots:  slots,
		now:    time.Now,
		logger: logger.With(slog.String("component", "timer_service")),
	}
}

// Record implements TimerService.Record.
func (s *timerService) Record(ctx context.Context, preset string, minutes int) (*domain.TimerSession, error) {
	session, err := domain.NewTimerSession(preset, minutes, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	var sessions []domain.TimerSession
	store.ReadJSON(ctx, s.slots, store.SlotTimerSessions, &sessions)
	sessions = append(sessions, *session)
	store.WriteJSON(ctx, s.slots, store.SlotTimerSessions, sessions)

	return session, nil
}

// Sessions implements TimerService.Sessions.
func (s *timerService) Sessions(ctx context.Context) []domain.TimerSession {
	var sessions []domain.TimerSession
	store.ReadJSON(ctx, s.slots, store.SlotTimerSessions, &sessions)
	return sessions
}
