package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scholars-chronicle/api/internal/config"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/platform/logger"
	"github.com/scholars-chronicle/api/internal/store"
)

// ImportRow is one front/back pair from a card import.
type ImportRow struct {
	Front string
	Back  string
}

// FlashcardService owns deck and card lifecycle plus per-session review
// bookkeeping.
type FlashcardService interface {
	// CreateDeck assigns an ID, starts with an empty card list and persists.
	CreateDeck(ctx context.Context, name, subject, unit, topic string) (*domain.FlashcardDeck, error)

	// UpdateDeck replaces the stored deck with the same ID wholesale.
	UpdateDeck(ctx context.Context, deck *domain.FlashcardDeck) error

	// DeleteDeck removes the deck and every card it owns.
	DeleteDeck(ctx context.Context, deckID string) error

	// AddCard appends a fresh unreviewed card, rejecting the addition with
	// ErrDeckFull once the deck holds the configured maximum.
	AddCard(ctx context.Context, deckID, front, back string) (*domain.Flashcard, error)

	// DeleteCard removes the matching card from its deck.
	DeleteCard(ctx context.Context, deckID, cardID string) error

	// ImportCards appends one card per row with the same defaults as
	// AddCard, persisting once. The batch is all-or-nothing: if it would
	// push the deck past the card cap, nothing is appended and ErrDeckFull
	// is returned.
	ImportCards(ctx context.Context, deckID string, rows []ImportRow) (*domain.FlashcardDeck, error)

	// CompleteStudyPass stamps every card in the deck with the same review
	// time, increments each review count, persists the deck as one batch
	// and awards the fixed study-pass XP bonus to the character.
	CompleteStudyPass(ctx context.Context, deckID string) (*domain.FlashcardDeck, *domain.Character, error)

	// Decks returns all decks in creation order.
	Decks(ctx context.Context) []domain.FlashcardDeck
}

// Verify interface compliance at compile time
var _ FlashcardService = (*flashcardService)(nil)

// flashcardService implements the FlashcardService interface.
type flashcardService struct {
	slots      store.SlotStore
	characters CharacterService
	cfg        config.FlashcardsConfig
	now        func() time.Time
	logger     *slog.Logger
}

// NewFlashcardService creates a new FlashcardService.
// If logger is nil, the default logger is used.
func NewFlashcardService(
	slots store.SlotStore,
	characters CharacterService,
	cfg config.FlashcardsConfig,
	logger *slog.Logger,
) FlashcardService {
	if slots == nil {
		panic("slots cannot be nil")
	}
	if characters == nil {
		panic("characters cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &flashcardService{
		slots:      slots,
		characters: characters,
		cfg:        cfg,
		now:        time.Now,
		logger:     logger.With(slog.String("component", "flashcard_service")),
	}
}

// load reads the deck collection, treating an absent slot as empty.
func (s *flashcardService) load(ctx context.Context) []domain.FlashcardDeck {
	var decks []domain.FlashcardDeck
	store.ReadJSON(ctx, s.slots, store.SlotFlashcards, &decks)
	return decks
}

// save persists the full deck collection.
func (s *flashcardService) save(ctx context.Context, decks []domain.FlashcardDeck) {
	store.WriteJSON(ctx, s.slots, store.SlotFlashcards, decks)
}

// findDeck locates a deck by ID within the loaded collection.
func findDeck(decks []domain.FlashcardDeck, deckID string) int {
	for i := range decks {
		if decks[i].ID == deckID {
			return i
		}
	}
	return -1
}

// CreateDeck implements FlashcardService.CreateDeck.
func (s *flashcardService) CreateDeck(ctx context.Context, name, subject, unit, topic string) (*domain.FlashcardDeck, error) {
	deck, err := domain.NewFlashcardDeck(name, subject, unit, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}

	decks := append(s.load(ctx), *deck)
	s.save(ctx, decks)

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("deck created",
		slog.String("deck_id", deck.ID),
		slog.String("name", deck.Name))

	return deck, nil
}

// UpdateDeck implements FlashcardService.UpdateDeck.
func (s *flashcardService) UpdateDeck(ctx context.Context, deck *domain.FlashcardDeck) error {
	if deck == nil {
		return ErrDeckNotFound
	}

	if err := deck.Validate(); err != nil {
		return fmt.Errorf("invalid deck: %w", err)
	}

	decks := s.load(ctx)
	idx := findDeck(decks, deck.ID)
	if idx < 0 {
		return ErrDeckNotFound
	}

	decks[idx] = *deck.Clone()
	s.save(ctx, decks)
	return nil
}

// DeleteDeck implements FlashcardService.DeleteDeck.
func (s *flashcardService) DeleteDeck(ctx context.Context, deckID string) error {
	decks := s.load(ctx)
	idx := findDeck(decks, deckID)
	if idx < 0 {
		return ErrDeckNotFound
	}

	decks = append(decks[:idx], decks[idx+1:]...)
	s.save(ctx, decks)
	return nil
}

// AddCard implements FlashcardService.AddCard.
func (s *flashcardService) AddCard(ctx context.Context, deckID, front, back string) (*domain.Flashcard, error) {
	decks := s.load(ctx)
	idx := findDeck(decks, deckID)
	if idx < 0 {
		return nil, ErrDeckNotFound
	}

	if len(decks[idx].Cards) >= s.cfg.MaxCardsPerDeck {
		return nil, ErrDeckFull
	}

	card, err := domain.NewFlashcard(deckID, front, back)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	decks[idx].Cards = append(decks[idx].Cards, *card)
	s.save(ctx, decks)

	return card, nil
}

// DeleteCard implements FlashcardService.DeleteCard.
func (s *flashcardService) DeleteCard(ctx context.Context, deckID, cardID string) error {
	decks := s.load(ctx)
	idx := findDeck(decks, deckID)
	if idx < 0 {
		return ErrDeckNotFound
	}

	cards := decks[idx].Cards
	for i := range cards {
		if cards[i].ID == cardID {
			decks[idx].Cards = append(cards[:i], cards[i+1:]...)
			s.save(ctx, decks)
			return nil
		}
	}

	return ErrCardNotFound
}

// ImportCards implements FlashcardService.ImportCards.
func (s *flashcardService) ImportCards(ctx context.Context, deckID string, rows []ImportRow) (*domain.FlashcardDeck, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyImport
	}

	decks := s.load(ctx)
	idx := findDeck(decks, deckID)
	if idx < 0 {
		return nil, ErrDeckNotFound
	}

	if len(decks[idx].Cards)+len(rows) > s.cfg.MaxCardsPerDeck {
		return nil, ErrDeckFull
	}

	for _, row := range rows {
		card, err := domain.NewFlashcard(deckID, row.Front, row.Back)
		if err != nil {
			return nil, fmt.Errorf("invalid import row: %w", err)
		}
		decks[idx].Cards = append(decks[idx].Cards, *card)
	}

	s.save(ctx, decks)

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("cards imported",
		slog.String("deck_id", deckID),
		slog.Int("count", len(rows)))

	deck := decks[idx].Clone()
	return deck, nil
}

// CompleteStudyPass implements FlashcardService.CompleteStudyPass.
func (s *flashcardService) CompleteStudyPass(ctx context.Context, deckID string) (*domain.FlashcardDeck, *domain.Character, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	decks := s.load(ctx)
	idx := findDeck(decks, deckID)
	if idx < 0 {
		return nil, nil, ErrDeckNotFound
	}

	// One timestamp for the whole pass so every card agrees on the session.
	now := s.now().UTC()
	for i := range decks[idx].Cards {
		decks[idx].Cards[i].LastReviewed = &now
		decks[idx].Cards[i].ReviewCount++
	}

	s.save(ctx, decks)

	deck := decks[idx].Clone()

	character, err := s.characters.AddXP(ctx, s.cfg.StudyPassXP)
	if err != nil {
		log.Error("study pass recorded but XP award failed",
			slog.String("deck_id", deckID),
			slog.String("error", err.Error()))
		return deck, nil, nil
	}

	log.Info("study pass completed",
		slog.String("deck_id", deckID),
		slog.Int("cards", len(deck.Cards)),
		slog.Int("xp_bonus", s.cfg.StudyPassXP))

	return deck, character, nil
}

// Decks implements FlashcardService.Decks.
func (s *flashcardService) Decks(ctx context.Context) []domain.FlashcardDeck {
	return s.load(ctx)
}
