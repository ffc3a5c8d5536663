// Package leveling implements the XP accumulation and level-up calculation
// for the character progression engine. The calculation is pure: callers
// pass in a character and receive a new one, never a mutation.
package leveling

import (
	"errors"

	"github.com/scholars-chronicle/api/internal/domain"
)

// Common errors
var (
	ErrNilCharacter  = errors.New("character cannot be nil")
	ErrInvalidAmount = errors.New("XP amount must be positive")
)

// Service defines the interface for leveling calculations.
type Service interface {
	// ApplyXP computes a new character with the XP added and any earned
	// level-ups applied.
	ApplyXP(character *domain.Character, amount int) (*domain.Character, error)

	// MaxLevel returns the level cap of the configured curve.
	MaxLevel() int
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a leveling service with the default curve.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a leveling service with a custom curve.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// ApplyXP implements the Service interface.
//
// Level-ups loop while the accumulated XP clears the next threshold, so a
// single large award can grant several levels at once. The original
// single-check behavior could leave XP beyond the threshold without a
// level-up; the loop keeps Level consistent with accumulated XP. Once at
// the level cap, XP still accumulates but no further level-up occurs.
func (s *defaultService) ApplyXP(character *domain.Character, amount int) (*domain.Character, error) {
	if character == nil {
		return nil, ErrNilCharacter
	}

	if amount < 1 {
		return nil, ErrInvalidAmount
	}

	updated := character.Clone()
	updated.XP += amount

	for updated.XP >= updated.NextLevelXP && updated.Level < s.params.MaxLevel {
		updated.Level++
		updated.NextLevelXP = s.params.ThresholdFor(updated.Level)
	}

	return updated, nil
}

// MaxLevel implements the Service interface.
func (s *defaultService) MaxLevel() int {
	return s.params.MaxLevel
}
