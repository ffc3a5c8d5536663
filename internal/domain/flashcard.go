package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Flashcard and deck validation errors
var (
	// ErrDeckIDEmpty is returned when a deck ID is empty.
	ErrDeckIDEmpty = errors.New("deck ID cannot be empty")

	// ErrDeckNameEmpty is returned when a deck name is empty.
	ErrDeckNameEmpty = errors.New("deck name cannot be empty")

	// ErrCardIDEmpty is returned when a card ID is empty.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card's front side is empty.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card's back side is empty.
	ErrCardBackEmpty = errors.New("card back cannot be empty")

	// ErrCardDeckIDMismatch is returned when a card's deck back-reference
	// does not match the deck that owns it.
	ErrCardDeckIDMismatch = errors.New("card deckId does not match owning deck")
)

// Flashcard is a single front/back card owned by exactly one deck.
// DeckID is a back-reference to the owning deck, never used for deletion.
// LastReviewed and NextReviewDate are nil until the card has been studied;
// NextReviewDate is reserved for spaced-repetition scheduling and is not
// yet computed by any engine.
type Flashcard struct {
	ID             string     `json:"id"`
	Front          string     `json:"front"`
	Back           string     `json:"back"`
	DeckID         string     `json:"deckId"`
	LastReviewed   *time.Time `json:"lastReviewed"`
	NextReviewDate *time.Time `json:"nextReviewDate"`
	ReviewCount    int        `json:"reviewCount"`
}

// NewFlashcard creates an unreviewed card for the given deck.
// Returns an error if validation fails.
func NewFlashcard(deckID, front, back string) (*Flashcard, error) {
	c := &Flashcard{
		ID:             uuid.New().String(),
		Front:          front,
		Back:           back,
		DeckID:         deckID,
		LastReviewed:   nil,
		NextReviewDate: nil,
		ReviewCount:    0,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Flashcard has valid data.
func (c *Flashcard) Validate() error {
	if c.ID == "" {
		return ErrCardIDEmpty
	}

	if c.Front == "" {
		return ErrCardFrontEmpty
	}

	if c.Back == "" {
		return ErrCardBackEmpty
	}

	if c.DeckID == "" {
		return ErrDeckIDEmpty
	}

	return nil
}

// FlashcardDeck is a named, ordered collection of flashcards scoped to a
// subject, unit and topic. Cards are exclusively owned by their deck.
type FlashcardDeck struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Subject string      `json:"subject"`
	Unit    string      `json:"unit"`
	Topic   string      `json:"topic"`
	Cards   []Flashcard `json:"cards"`
}

// NewFlashcardDeck creates an empty deck with a fresh ID.
// Returns an error if validation fails.
func NewFlashcardDeck(name, subject, unit, topic string) (*FlashcardDeck, error) {
	d := &FlashcardDeck{
		ID:      uuid.New().String(),
		Name:    name,
		Subject: subject,
		Unit:    unit,
		Topic:   topic,
		Cards:   []Flashcard{},
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks the deck and the back-reference of every card it owns.
func (d *FlashcardDeck) Validate() error {
	if d.ID == "" {
		return ErrDeckIDEmpty
	}

	if d.Name == "" {
		return ErrDeckNameEmpty
	}

	for i := range d.Cards {
		if err := d.Cards[i].Validate(); err != nil {
			return err
		}
		if d.Cards[i].DeckID != d.ID {
			return ErrCardDeckIDMismatch
		}
	}

	return nil
}

// Clone returns a deep copy of the deck, including its card slice.
func (d *FlashcardDeck) Clone() *FlashcardDeck {
	cp := *d
	cp.Cards = make([]Flashcard, len(d.Cards))
	copy(cp.Cards, d.Cards)
	return &cp
}
