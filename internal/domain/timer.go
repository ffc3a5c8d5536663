package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Timer session validation errors
var (
	// ErrTimerPresetEmpty is returned when a session preset name is empty.
	ErrTimerPresetEmpty = errors.New("timer session preset cannot be empty")

	// ErrTimerMinutesInvalid is returned when a session duration is not positive.
	ErrTimerMinutesInvalid = errors.New("timer session minutes must be positive")
)

// TimerSession records one completed study-timer run. Sessions are
// append-only history; the countdown itself is a presentation concern.
type TimerSession struct {
	ID          string    `json:"id"`
	Preset      string    `json:"preset"`
	Minutes     int       `json:"minutes"`
	CompletedAt time.Time `json:"completedAt"`
}

// NewTimerSession records a completed session for the given preset.
func NewTimerSession(preset string, minutes int, completedAt time.Time) (*TimerSession, error) {
	s := &TimerSession{
		ID:          uuid.New().String(),
		Preset:      preset,
		Minutes:     minutes,
		CompletedAt: completedAt,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks if the TimerSession has valid data.
func (s *TimerSession) Validate() error {
	if s.Preset == "" {
		return ErrTimerPresetEmpty
	}

	if s.Minutes < 1 {
		return ErrTimerMinutesInvalid
	}

	return nil
}
