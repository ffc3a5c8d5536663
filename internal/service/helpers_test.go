package service

import (
	"context"
	"sync"
	"time"

	"github.com/scholars-chronicle/api/internal/config"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/domain/leveling"
)

// fakeSlotStore is a map-backed SlotStore for tests.
type fakeSlotStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeSlotStore() *fakeSlotStore {
	return &fakeSlotStore{data: make(map[string][]byte)}
}

func (f *fakeSlotStore) Read(_ context.Context, slot string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[slot]
	return value, ok
}

func (f *fakeSlotStore) Write(_ context.Context, slot string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[slot] = value
}

var testDefaultStats = domain.CharacterStats{Wisdom: 1, Focus: 1, Memory: 1, Discipline: 1}

func testQuestsConfig() config.QuestsConfig {
	return config.QuestsConfig{
		BeginnerXP:     50,
		IntermediateXP: 75,
		AdvancedXP:     100,
		ExpertXP:       150,
	}
}

func testFlashcardsConfig() config.FlashcardsConfig {
	return config.FlashcardsConfig{
		MaxCardsPerDeck: 100,
		StudyPassXP:     10,
	}
}

// newTestCharacterService wires a CharacterService over the given store
// with the default curve.
func newTestCharacterService(slots *fakeSlotStore) CharacterService {
	return NewCharacterService(slots, leveling.NewDefaultService(), testDefaultStats, 100, nil)
}

// fixedNow pins a service clock for deterministic review timestamps.
func fixedNow() time.Time {
	return time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
}
