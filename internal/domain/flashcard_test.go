package domain

import "testing"

func TestNewFlashcardDeck(t *testing.T) {
	t.Parallel() // Enable parallel execution

	deck, err := NewFlashcardDeck("Waves", "physics", "unit4", "Waves (superposition, diffraction, interference)")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if deck.ID == "" {
		t.Error("Expected non-empty deck ID")
	}

	if len(deck.Cards) != 0 {
		t.Errorf("Expected new deck to start empty, got %d cards", len(deck.Cards))
	}

	// Test empty name
	_, err = NewFlashcardDeck("", "physics", "unit4", "")
	if err != ErrDeckNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrDeckNameEmpty, err)
	}
}

func TestNewFlashcard(t *testing.T) {
	t.Parallel() // Enable parallel execution

	card, err := NewFlashcard("deck-1", "Define superposition", "Two waves combine by vector addition of displacement")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.ID == "" {
		t.Error("Expected non-empty card ID")
	}

	if card.DeckID != "deck-1" {
		t.Errorf("Expected deck back-reference deck-1, got %s", card.DeckID)
	}

	if card.LastReviewed != nil || card.NextReviewDate != nil {
		t.Error("Expected new card to carry no review dates")
	}

	if card.ReviewCount != 0 {
		t.Errorf("Expected review count 0, got %d", card.ReviewCount)
	}

	// Test empty front
	_, err = NewFlashcard("deck-1", "", "back")
	if err != ErrCardFrontEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardFrontEmpty, err)
	}

	// Test empty back
	_, err = NewFlashcard("deck-1", "front", "")
	if err != ErrCardBackEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardBackEmpty, err)
	}

	// Test missing deck reference
	_, err = NewFlashcard("", "front", "back")
	if err != ErrDeckIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrDeckIDEmpty, err)
	}
}

func TestFlashcardDeckValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	deck := FlashcardDeck{
		ID:   "deck-1",
		Name: "Waves",
		Cards: []Flashcard{
			{ID: "card-1", Front: "f", Back: "b", DeckID: "deck-1"},
		},
	}

	if err := deck.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// A card pointing at another deck fails the back-reference check.
	deck.Cards[0].DeckID = "deck-2"
	if err := deck.Validate(); err != ErrCardDeckIDMismatch {
		t.Errorf("Expected error %v, got %v", ErrCardDeckIDMismatch, err)
	}
}

func TestFlashcardDeckClone(t *testing.T) {
	t.Parallel() // Enable parallel execution

	original := &FlashcardDeck{
		ID:   "deck-1",
		Name: "Waves",
		Cards: []Flashcard{
			{ID: "card-1", Front: "f", Back: "b", DeckID: "deck-1"},
		},
	}

	clone := original.Clone()
	clone.Cards[0].Front = "changed"
	clone.Cards = append(clone.Cards, Flashcard{ID: "card-2", Front: "f2", Back: "b2", DeckID: "deck-1"})

	if original.Cards[0].Front != "f" {
		t.Errorf("Expected original card unchanged, got front %q", original.Cards[0].Front)
	}

	if len(original.Cards) != 1 {
		t.Errorf("Expected original to keep 1 card, got %d", len(original.Cards))
	}
}
