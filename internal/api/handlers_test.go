package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholars-chronicle/api/internal/config"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/domain/leveling"
	"github.com/scholars-chronicle/api/internal/service"
)

// fakeSlotStore is a map-backed SlotStore for handler tests.
type fakeSlotStore struct {
	data map[string][]byte
}

func newFakeSlotStore() *fakeSlotStore {
	return &fakeSlotStore{data: make(map[string][]byte)}
}

func (f *fakeSlotStore) Read(_ context.Context, slot string) ([]byte, bool) {
	value, ok := f.data[slot]
	return value, ok
}

func (f *fakeSlotStore) Write(_ context.Context, slot string, value []byte) {
	f.data[slot] = value
}

// newTestRouter wires the facade over an in-memory store and mounts the
// handlers the way the server router does.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	slots := newFakeSlotStore()
	characters := service.NewCharacterService(
		slots,
		leveling.NewDefaultService(),
		domain.CharacterStats{Wisdom: 1, Focus: 1, Memory: 1, Discipline: 1},
		100,
		nil,
	)
	quests := service.NewQuestService(slots, characters, config.QuestsConfig{
		BeginnerXP:     50,
		IntermediateXP: 75,
		AdvancedXP:     100,
		ExpertXP:       150,
	}, nil)
	flashcards := service.NewFlashcardService(slots, characters, config.FlashcardsConfig{
		MaxCardsPerDeck: 100,
		StudyPassXP:     10,
	}, nil)
	notes := service.NewNoteService(slots, nil)

	app, err := service.NewApp(context.Background(), characters, quests, flashcards, notes, nil)
	require.NoError(t, err)

	characterHandler := NewCharacterHandler(app, nil)
	questHandler := NewQuestHandler(app, nil)
	flashcardHandler := NewFlashcardHandler(app, nil)

	r := chi.NewRouter()
	r.Get("/character", characterHandler.Get)
	r.Post("/character/xp", characterHandler.AddXP)
	r.Get("/quests", questHandler.List)
	r.Post("/quests", questHandler.Create)
	r.Post("/quests/{id}/complete", questHandler.Complete)
	r.Delete("/quests/{id}", questHandler.Delete)
	r.Get("/decks", flashcardHandler.ListDecks)
	r.Post("/decks", flashcardHandler.CreateDeck)
	r.Post("/decks/{id}/cards", flashcardHandler.AddCard)
	r.Post("/decks/{id}/import", flashcardHandler.ImportCards)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetCharacterEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/character", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var character domain.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &character))
	assert.Equal(t, 1, character.Level)
	assert.Equal(t, 100, character.NextLevelXP)
}

func TestQuestLifecycleOverHTTP(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/quests", CreateQuestRequest{
		Title:      "Finish fields worksheet",
		Subject:    "physics",
		Type:       "practice",
		Difficulty: "advanced",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var quest domain.Quest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quest))
	assert.Equal(t, 100, quest.XPReward)
	assert.False(t, quest.Completed)

	rec = doJSON(t, router, http.MethodPost, "/quests/"+quest.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The XP award landed on the character.
	rec = doJSON(t, router, http.MethodGet, "/character", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var character domain.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &character))
	assert.Equal(t, 100, character.XP)
	assert.Equal(t, 2, character.Level)

	rec = doJSON(t, router, http.MethodDelete, "/quests/"+quest.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateQuestRejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Missing title fails request validation before any service runs.
	rec := doJSON(t, router, http.MethodPost, "/quests", CreateQuestRequest{
		Type:       "practice",
		Difficulty: "advanced",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown difficulty passes request validation but fails in the domain.
	rec = doJSON(t, router, http.MethodPost, "/quests", CreateQuestRequest{
		Title:      "Quest",
		Type:       "practice",
		Difficulty: "impossible",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteUnknownQuestOverHTTP(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/quests/nope/complete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImportCardsOverHTTP(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/decks", CreateDeckRequest{
		Name:    "Networking",
		Subject: "computerScience",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var deck domain.FlashcardDeck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deck))

	rec = doJSON(t, router, http.MethodPost, "/decks/"+deck.ID+"/import", ImportCardsRequest{
		Text: "What is DNS?,Name resolution\nnot a card line\nWhat is TCP?,Reliable transport",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result ImportCardsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	rec = doJSON(t, router, http.MethodGet, "/decks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var decks []domain.FlashcardDeck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decks))
	require.Len(t, decks, 1)
	assert.Len(t, decks[0].Cards, 2)
}

func TestImportCardsWithNoUsableRows(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/decks", CreateDeckRequest{Name: "Empty"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var deck domain.FlashcardDeck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deck))

	rec = doJSON(t, router, http.MethodPost, "/decks/"+deck.ID+"/import", ImportCardsRequest{
		Text: "no commas here\nnor here",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
