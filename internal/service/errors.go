package service

import (
	"errors"
	"fmt"
)

// Common service errors used across the engines.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// Entity-specific "not found" errors

	// ErrCharacterNotFound indicates no character has been initialized yet.
	// AddXP never auto-initializes a character mid-award.
	ErrCharacterNotFound = fmt.Errorf("%w: character", ErrNotFound)

	// ErrQuestNotFound indicates that the requested quest does not exist.
	ErrQuestNotFound = fmt.Errorf("%w: quest", ErrNotFound)

	// ErrDeckNotFound indicates that the requested flashcard deck does not exist.
	ErrDeckNotFound = fmt.Errorf("%w: deck", ErrNotFound)

	// ErrCardNotFound indicates that the requested flashcard does not exist.
	ErrCardNotFound = fmt.Errorf("%w: card", ErrNotFound)

	// ErrNoteNotFound indicates that the requested note does not exist.
	ErrNoteNotFound = fmt.Errorf("%w: note", ErrNotFound)

	// ErrDeckFull is returned when adding or importing cards would push a
	// deck past its configured card cap.
	ErrDeckFull = errors.New("deck is at its card limit")

	// ErrEmptyImport is returned when an import contains no usable rows.
	ErrEmptyImport = errors.New("import contains no rows")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
