package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholars-chronicle/api/internal/domain"
)

func newTestApp(t *testing.T) (*App, *fakeSlotStore) {
	t.Helper()

	slots := newFakeSlotStore()
	characters := newTestCharacterService(slots)
	quests := NewQuestService(slots, characters, testQuestsConfig(), nil)
	flashcards := NewFlashcardService(slots, characters, testFlashcardsConfig(), nil)
	notes := NewNoteService(slots, nil)

	app, err := NewApp(context.Background(), characters, quests, flashcards, notes, nil)
	require.NoError(t, err)
	return app, slots
}

func TestNewAppLoadsInitialState(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	character := app.Character()
	assert.Equal(t, 1, character.Level)
	assert.Empty(t, app.Quests())
	assert.Empty(t, app.FlashcardDecks())
	assert.Empty(t, app.Notes())
}

func TestMarkQuestCompleteRefreshesCharacter(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	ctx := context.Background()

	quest, err := app.AddQuest(ctx, CreateQuestParams{
		Title:      "Finish capacitors worksheet",
		Type:       domain.QuestTypePractice,
		Difficulty: domain.QuestDifficultyAdvanced,
	})
	require.NoError(t, err)

	completed, err := app.MarkQuestComplete(ctx, quest.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	// Both snapshots reflect the completion.
	quests := app.Quests()
	require.Len(t, quests, 1)
	assert.True(t, quests[0].Completed)
	assert.Equal(t, 100, app.Character().XP)

	// Idempotent repeat leaves the XP snapshot alone.
	_, err = app.MarkQuestComplete(ctx, quest.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, app.Character().XP)
}

func TestCharacterReturnsCopy(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	snapshot := app.Character()
	snapshot.XP = 9999

	assert.Equal(t, 0, app.Character().XP, "mutating a snapshot must not leak into the facade")
}

func TestFlashcardDecksReturnsDeepCopy(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	ctx := context.Background()

	deck, err := app.AddFlashcardDeck(ctx, "Waves", "physics", "unit4", "")
	require.NoError(t, err)
	_, err = app.AddFlashcard(ctx, deck.ID, "q", "a")
	require.NoError(t, err)

	snapshot := app.FlashcardDecks()
	snapshot[0].Cards[0].Front = "tampered"

	assert.Equal(t, "q", app.FlashcardDecks()[0].Cards[0].Front)
}

func TestDeleteQuestRemovesFromSnapshot(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	ctx := context.Background()

	quest, err := app.AddQuest(ctx, CreateQuestParams{
		Title:      "Temp",
		Type:       domain.QuestTypeLearning,
		Difficulty: domain.QuestDifficultyBeginner,
	})
	require.NoError(t, err)

	require.NoError(t, app.DeleteQuest(ctx, quest.ID))
	assert.Empty(t, app.Quests())

	assert.ErrorIs(t, app.DeleteQuest(ctx, quest.ID), ErrQuestNotFound)
}

func TestQuestsBySubjectSnapshot(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	ctx := context.Background()

	for _, subject := range []string{"physics", "Physics", "mathematics"} {
		_, err := app.AddQuest(ctx, CreateQuestParams{
			Title:      "Quest " + subject,
			Subject:    subject,
			Type:       domain.QuestTypeLearning,
			Difficulty: domain.QuestDifficultyBeginner,
		})
		require.NoError(t, err)
	}

	assert.Len(t, app.QuestsBySubject("pHySiCs"), 2)
}

func TestNoteLifecycle(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	ctx := context.Background()

	note, err := app.AddNote(ctx, "Fields summary", "physics", "Fields", "https://drive.google.com/file/d/abc/view")
	require.NoError(t, err)

	notes := app.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)

	require.NoError(t, app.DeleteNote(ctx, note.ID))
	assert.Empty(t, app.Notes())
}

func TestNewAppRestoresPersistedState(t *testing.T) {
	t.Parallel()

	app, slots := newTestApp(t)
	ctx := context.Background()

	quest, err := app.AddQuest(ctx, CreateQuestParams{
		Title:      "Persisted quest",
		Type:       domain.QuestTypeLearning,
		Difficulty: domain.QuestDifficultyBeginner,
	})
	require.NoError(t, err)
	_, err = app.MarkQuestComplete(ctx, quest.ID)
	require.NoError(t, err)

	// A second facade over the same store sees the mutated state.
	characters := newTestCharacterService(slots)
	quests := NewQuestService(slots, characters, testQuestsConfig(), nil)
	flashcards := NewFlashcardService(slots, characters, testFlashcardsConfig(), nil)
	notes := NewNoteService(slots, nil)

	reloaded, err := NewApp(ctx, characters, quests, flashcards, notes, nil)
	require.NoError(t, err)

	restored := reloaded.Quests()
	require.Len(t, restored, 1)
	assert.True(t, restored[0].Completed)
	assert.Equal(t, 50, reloaded.Character().XP)
}
