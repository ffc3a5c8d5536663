package domain

import (
	"testing"
	"time"
)

func TestNewNote(t *testing.T) {
	t.Parallel() // Enable parallel execution

	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	note, err := NewNote(
		"Fields summary",
		"physics",
		"Electric, magnetic and gravitational fields",
		"https://drive.google.com/file/d/abc123/view",
		now,
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if note.ID == "" {
		t.Error("Expected non-empty note ID")
	}

	if !note.DateAdded.Equal(now) {
		t.Errorf("Expected date added %v, got %v", now, note.DateAdded)
	}

	// Test empty title
	_, err = NewNote("", "physics", "topic", "https://drive.google.com/x", now)
	if err != ErrNoteTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrNoteTitleEmpty, err)
	}

	// Test empty subject
	_, err = NewNote("t", "", "topic", "https://drive.google.com/x", now)
	if err != ErrNoteSubjectEmpty {
		t.Errorf("Expected error %v, got %v", ErrNoteSubjectEmpty, err)
	}

	// Test empty topic
	_, err = NewNote("t", "physics", "", "https://drive.google.com/x", now)
	if err != ErrNoteTopicEmpty {
		t.Errorf("Expected error %v, got %v", ErrNoteTopicEmpty, err)
	}

	// Test non-Drive URL
	_, err = NewNote("t", "physics", "topic", "https://example.com/doc", now)
	if err != ErrNoteURLInvalid {
		t.Errorf("Expected error %v, got %v", ErrNoteURLInvalid, err)
	}
}
