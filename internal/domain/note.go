package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note validation errors
var (
	// ErrNoteTitleEmpty is returned when a note title is empty.
	ErrNoteTitleEmpty = errors.New("note title cannot be empty")

	// ErrNoteURLInvalid is returned when a note URL is not a Google Drive link.
	ErrNoteURLInvalid = errors.New("note URL must be a Google Drive link")

	// ErrNoteSubjectEmpty is returned when a note subject is empty.
	ErrNoteSubjectEmpty = errors.New("note subject cannot be empty")

	// ErrNoteTopicEmpty is returned when a note topic is empty.
	ErrNoteTopicEmpty = errors.New("note topic cannot be empty")
)

// Note links a study document (hosted on Google Drive) to a subject and topic.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	URL       string    `json:"url"`
	DateAdded time.Time `json:"dateAdded"`
}

// NewNote creates a note stamped with the given creation time.
// Returns an error if validation fails.
func NewNote(title, subject, topic, url string, now time.Time) (*Note, error) {
	n := &Note{
		ID:        uuid.New().String(),
		Title:     title,
		Subject:   subject,
		Topic:     topic,
		URL:       url,
		DateAdded: now,
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate checks if the Note has valid data.
func (n *Note) Validate() error {
	if n.Title == "" {
		return ErrNoteTitleEmpty
	}

	if n.Subject == "" {
		return ErrNoteSubjectEmpty
	}

	if n.Topic == "" {
		return ErrNoteTopicEmpty
	}

	if !strings.Contains(n.URL, "drive.google.com") {
		return ErrNoteURLInvalid
	}

	return nil
}
