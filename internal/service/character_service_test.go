package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/store"
)

func TestGetOrInitCreatesDefaultCharacter(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotStore()
	svc := newTestCharacterService(slots)
	ctx := context.Background()

	character, err := svc.GetOrInit(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, character.Level)
	assert.Equal(t, 0, character.XP)
	assert.Equal(t, 100, character.NextLevelXP)
	assert.Equal(t, testDefaultStats, character.Stats)

	// The default character is persisted on first use.
	var persisted domain.Character
	require.True(t, store.ReadJSON(ctx, slots, store.SlotCharacter, &persisted))
	assert.Equal(t, *character, persisted)
}

func TestGetOrInitReturnsExistingCharacter(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotStore()
	svc := newTestCharacterService(slots)
	ctx := context.Background()

	existing := domain.Character{
		Stats:       domain.CharacterStats{Wisdom: 5, Focus: 3, Memory: 2, Discipline: 4},
		XP:          180,
		Level:       2,
		NextLevelXP: 150,
	}
	store.WriteJSON(ctx, slots, store.SlotCharacter, existing)

	character, err := svc.GetOrInit(ctx)
	require.NoError(t, err)
	assert.Equal(t, existing, *character)
}

func TestAddXPWithoutCharacter(t *testing.T) {
	t.Parallel()

	svc := newTestCharacterService(newFakeSlotStore())

	// An XP award never initializes a character by itself.
	_, err := svc.AddXP(context.Background(), 50)
	assert.ErrorIs(t, err, ErrCharacterNotFound)
}

func TestAddXPLevelsUpAndPersists(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotStore()
	svc := newTestCharacterService(slots)
	ctx := context.Background()

	_, err := svc.GetOrInit(ctx)
	require.NoError(t, err)

	character, err := svc.AddXP(ctx, 100)
	require.NoError(t, err)

	assert.Equal(t, 2, character.Level)
	assert.Equal(t, 100, character.XP)
	assert.Equal(t, 150, character.NextLevelXP)

	var persisted domain.Character
	require.True(t, store.ReadJSON(ctx, slots, store.SlotCharacter, &persisted))
	assert.Equal(t, *character, persisted)
}

func TestAddXPRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotStore()
	svc := newTestCharacterService(slots)
	ctx := context.Background()

	_, err := svc.GetOrInit(ctx)
	require.NoError(t, err)

	_, err = svc.AddXP(ctx, 0)
	assert.Error(t, err)
}

func TestUpdateStats(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotStore()
	svc := newTestCharacterService(slots)
	ctx := context.Background()

	newStats := domain.CharacterStats{Wisdom: 4, Focus: 2, Memory: 3, Discipline: 5}

	// Lazily initializes, then overwrites the stats wholesale.
	character, err := svc.UpdateStats(ctx, newStats)
	require.NoError(t, err)

	assert.Equal(t, newStats, character.Stats)
	assert.Equal(t, 1, character.Level)

	var persisted domain.Character
	require.True(t, store.ReadJSON(ctx, slots, store.SlotCharacter, &persisted))
	assert.Equal(t, newStats, persisted.Stats)
}

func TestUpdateStatsRejectsInvalidStats(t *testing.T) {
	t.Parallel()

	svc := newTestCharacterService(newFakeSlotStore())

	_, err := svc.UpdateStats(context.Background(), domain.CharacterStats{Wisdom: 0, Focus: 1, Memory: 1, Discipline: 1})
	assert.ErrorIs(t, err, domain.ErrCharacterStatsInvalid)
}
