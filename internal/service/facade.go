package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/scholars-chronicle/api/internal/domain"
)

// App is the application state facade: the single coordination point
// between presentation layers and the engines. It holds in-memory copies
// of the character, quest collection, deck collection and notes, loaded
// once at startup and refreshed after every mutation.
//
// A single mutex serializes all operations, preserving the original
// one-mutation-at-a-time ordering even with parallel HTTP callers.
// Dependency flow is strictly downward: facade to engines to store.
type App struct {
	mu sync.Mutex

	characters CharacterService
	quests     QuestService
	flashcards FlashcardService
	notes      NoteService

	character *domain.Character
	questList []domain.Quest
	deckList  []domain.FlashcardDeck
	noteList  []domain.Note

	logger *slog.Logger
}

// NewApp creates the facade and performs the startup load: each engine's
// load/init operation runs exactly once.
func NewApp(
	ctx context.Context,
	characters CharacterService,
	quests QuestService,
	flashcards FlashcardService,
	notes NoteService,
	logger *slog.Logger,
) (*App, error) {
	if characters == nil {
		panic("characters cannot be nil")
	}
	if quests == nil {
		panic("quests cannot be nil")
	}
	if flashcards == nil {
		panic("flashcards cannot be nil")
	}
	if notes == nil {
		panic("notes cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	character, err := characters.GetOrInit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load character: %w", err)
	}

	app := &App{
		characters: characters,
		quests:     quests,
		flashcards: flashcards,
		notes:      notes,
		character:  character,
		questList:  quests.List(ctx),
		deckList:   flashcards.Decks(ctx),
		noteList:   notes.List(ctx),
		logger:     logger.With(slog.String("component", "app_facade")),
	}

	app.logger.Info("application state loaded",
		slog.Int("quests", len(app.questList)),
		slog.Int("decks", len(app.deckList)),
		slog.Int("notes", len(app.noteList)),
		slog.Int("character_level", character.Level))

	return app, nil
}

// Character returns a copy of the in-memory character.
func (a *App) Character() *domain.Character {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.character.Clone()
}

// Quests returns a copy of the in-memory quest collection.
func (a *App) Quests() []domain.Quest {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Quest, len(a.questList))
	copy(out, a.questList)
	return out
}

// QuestsBySubject returns quests whose subject matches case-insensitively.
func (a *App) QuestsBySubject(subject string) []domain.Quest {
	a.mu.Lock()
	defer a.mu.Unlock()
	var matched []domain.Quest
	for _, q := range a.questList {
		if strings.EqualFold(q.Subject, subject) {
			matched = append(matched, q)
		}
	}
	return matched
}

// FlashcardDecks returns a deep copy of the in-memory deck collection.
func (a *App) FlashcardDecks() []domain.FlashcardDeck {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.FlashcardDeck, len(a.deckList))
	for i := range a.deckList {
		out[i] = *a.deckList[i].Clone()
	}
	return out
}

// Notes returns a copy of the in-memory note collection.
func (a *App) Notes() []domain.Note {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Note, len(a.noteList))
	copy(out, a.noteList)
	return out
}

// AddQuest creates a quest and appends it to the in-memory collection.
func (a *App) AddQuest(ctx context.Context, params CreateQuestParams) (*domain.Quest, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	quest, err := a.quests.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	a.questList = append(a.questList, *quest)
	return quest, nil
}

// MarkQuestComplete completes a quest, refreshing both the quest entry and
// the character snapshot when XP was awarded.
func (a *App) MarkQuestComplete(ctx context.Context, questID string) (*domain.Quest, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	quest, character, err := a.quests.Complete(ctx, questID)
	if err != nil {
		return nil, err
	}

	a.replaceQuest(*quest)
	if character != nil {
		a.character = character
	}

	return quest, nil
}

// DeleteQuest removes a quest. No XP is revoked.
func (a *App) DeleteQuest(ctx context.Context, questID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.quests.Delete(ctx, questID); err != nil {
		return err
	}

	for i := range a.questList {
		if a.questList[i].ID == questID {
			a.questList = append(a.questList[:i], a.questList[i+1:]...)
			break
		}
	}
	return nil
}

// UpdateCharacterStats overwrites the character's stats wholesale.
func (a *App) UpdateCharacterStats(ctx context.Context, stats domain.CharacterStats) (*domain.Character, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	character, err := a.characters.UpdateStats(ctx, stats)
	if err != nil {
		return nil, err
	}

	a.character = character
	return character.Clone(), nil
}

// AddCharacterXP awards XP directly, e.g. for ad-hoc study work.
func (a *App) AddCharacterXP(ctx context.Context, amount int) (*domain.Character, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	character, err := a.characters.AddXP(ctx, amount)
	if err != nil {
		return nil, err
	}

	a.character = character
	return character.Clone(), nil
}

// AddFlashcardDeck creates a deck and appends it to the in-memory collection.
func (a *App) AddFlashcardDeck(ctx context.Context, name, subject, unit, topic string) (*domain.FlashcardDeck, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	deck, err := a.flashcards.CreateDeck(ctx, name, subject, unit, topic)
	if err != nil {
		return nil, err
	}

	a.deckList = append(a.deckList, *deck.Clone())
	return deck, nil
}

// UpdateFlashcardDeck replaces a stored deck wholesale.
func (a *App) UpdateFlashcardDeck(ctx context.Context, deck *domain.FlashcardDeck) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.flashcards.UpdateDeck(ctx, deck); err != nil {
		return err
	}

	a.replaceDeck(*deck.Clone())
	return nil
}

// DeleteFlashcardDeck removes a deck and all of its cards.
func (a *App) DeleteFlashcardDeck(ctx context.Context, deckID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.flashcards.DeleteDeck(ctx, deckID); err != nil {
		return err
	}

	for i := range a.deckList {
		if a.deckList[i].ID == deckID {
			a.deckList = append(a.deckList[:i], a.deckList[i+1:]...)
			break
		}
	}
	return nil
}

// AddFlashcard appends a card to a deck, honoring the deck's card cap.
func (a *App) AddFlashcard(ctx context.Context, deckID, front, back string) (*domain.Flashcard, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	card, err := a.flashcards.AddCard(ctx, deckID, front, back)
	if err != nil {
		return nil, err
	}

	for i := range a.deckList {
		if a.deckList[i].ID == deckID {
			a.deckList[i].Cards = append(a.deckList[i].Cards, *card)
			break
		}
	}
	return card, nil
}

// DeleteFlashcard removes a card from its deck.
func (a *App) DeleteFlashcard(ctx context.Context, deckID, cardID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.flashcards.DeleteCard(ctx, deckID, cardID); err != nil {
		return err
	}

	for i := range a.deckList {
		if a.deckList[i].ID != deckID {
			continue
		}
		cards := a.deckList[i].Cards
		for j := range cards {
			if cards[j].ID == cardID {
				a.deckList[i].Cards = append(cards[:j], cards[j+1:]...)
				break
			}
		}
		break
	}
	return nil
}

// ImportFlashcards appends a batch of cards to a deck in one persisted write.
func (a *App) ImportFlashcards(ctx context.Context, deckID string, rows []ImportRow) (*domain.FlashcardDeck, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	deck, err := a.flashcards.ImportCards(ctx, deckID, rows)
	if err != nil {
		return nil, err
	}

	a.replaceDeck(*deck.Clone())
	return deck, nil
}

// CompleteStudyPass records a full review pass over a deck and refreshes
// the character snapshot with the awarded bonus.
func (a *App) CompleteStudyPass(ctx context.Context, deckID string) (*domain.FlashcardDeck, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	deck, character, err := a.flashcards.CompleteStudyPass(ctx, deckID)
	if err != nil {
		return nil, err
	}

	a.replaceDeck(*deck.Clone())
	if character != nil {
		a.character = character
	}

	return deck, nil
}

// AddNote validates and stores a study note.
func (a *App) AddNote(ctx context.Context, title, subject, topic, url string) (*domain.Note, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	note, err := a.notes.Add(ctx, title, subject, topic, url)
	if err != nil {
		return nil, err
	}

	a.noteList = append(a.noteList, *note)
	return note, nil
}

// DeleteNote removes a study note.
func (a *App) DeleteNote(ctx context.Context, noteID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.notes.Delete(ctx, noteID); err != nil {
		return err
	}

	for i := range a.noteList {
		if a.noteList[i].ID == noteID {
			a.noteList = append(a.noteList[:i], a.noteList[i+1:]...)
			break
		}
	}
	return nil
}

// replaceQuest swaps the in-memory quest entry with the same ID.
func (a *App) replaceQuest(quest domain.Quest) {
	for i := range a.questList {
		if a.questList[i].ID == quest.ID {
			a.questList[i] = quest
			return
		}
	}
	a.questList = append(a.questList, quest)
}

// replaceDeck swaps the in-memory deck entry with the same ID.
func (a *App) replaceDeck(deck domain.FlashcardDeck) {
	for i := range a.deckList {
		if a.deckList[i].ID == deck.ID {
			a.deckList[i] = deck
			return
		}
	}
	a.deckList = append(a.deckList, deck)
}
