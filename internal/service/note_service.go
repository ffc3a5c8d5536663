package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/store"
)

// NoteService owns the study-note collection: links to externally hosted
// documents, tagged by subject and topic.
type NoteService interface {
	// Add validates and persists a new note.
	Add(ctx context.Context, title, subject, topic, url string) (*domain.Note, error)

	// Delete removes the note with the given ID.
	Delete(ctx context.Context, noteID string) error

	// List returns all notes in creation order.
	List(ctx context.Context) []domain.Note
}

// Verify interface compliance at compile time
var _ NoteService = (*noteService)(nil)

// noteService implements the NoteService interface.
type noteService struct {
	slots  store.SlotStore
	now    func() time.Time
	logger *slog.Logger
}

// NewNoteService creates a new NoteService.
// If logger is nil, the default logger is used.
func NewNoteService(slots store.SlotStore, logger *slog.Logger) NoteService {
	if slots == nil {
		panic("slots cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &noteService{
		slots:  slots,
		now:    time.Now,
		logger: logger.With(slog.String("component", "note_service")),
	}
}

// load reads the note collection, treating an absent slot as empty.
func (s *noteService) load(ctx context.Context) []domain.Note {
	var notes []domain.Note
	store.ReadJSON(ctx, s.slots, store.SlotNotes, &notes)
	return notes
}

// Add implements NoteService.Add.
func (s *noteService) Add(ctx context.Context, title, subject, topic, url string) (*domain.Note, error) {
	note, err := domain.NewNote(title, subject, topic, url, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	notes := append(s.load(ctx), *note)
	store.WriteJSON(ctx, s.slots, store.SlotNotes, notes)

	return note, nil
}

// Delete implements NoteService.Delete.
func (s *noteService) Delete(ctx context.Context, noteID string) error {
	notes := s.load(ctx)
	for i := range notes {
		if notes[i].ID == noteID {
			notes = append(notes[:i], notes[i+1:]...)
			store.WriteJSON(ctx, s.slots, store.SlotNotes, notes)
			return nil
		}
	}
	return ErrNoteNotFound
}

// List implements NoteService.List.
func (s *noteService) List(ctx context.Context) []domain.Note {
	return s.load(ctx)
}
