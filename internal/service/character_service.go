package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/domain/leveling"
	"github.com/scholars-chronicle/api/internal/platform/logger"
	"github.com/scholars-chronicle/api/internal/store"
)

// CharacterService owns XP accumulation and level-up computation for the
// singleton character record.
type CharacterService interface {
	// GetOrInit reads the character, lazily creating and persisting a
	// default one on first use.
	GetOrInit(ctx context.Context) (*domain.Character, error)

	// UpdateStats overwrites the stats sub-record wholesale and persists.
	UpdateStats(ctx context.Context, stats domain.CharacterStats) (*domain.Character, error)

	// AddXP adds the amount to the character's XP, applies any earned
	// level-ups and persists. Returns ErrCharacterNotFound if no character
	// has been initialized; it never auto-initializes mid-award.
	AddXP(ctx context.Context, amount int) (*domain.Character, error)
}

// Verify interface compliance at compile time
var _ CharacterService = (*characterService)(nil)

// characterService implements the CharacterService interface.
type characterService struct {
	slots    store.SlotStore
	leveling leveling.Service
	defaults domain.CharacterStats
	baseXP   int
	logger   *slog.Logger
}

// NewCharacterService creates a new CharacterService.
// If logger is nil, the default logger is used.
func NewCharacterService(
	slots store.SlotStore,
	levelingService leveling.Service,
	defaults domain.CharacterStats,
	baseXP int,
	logger *slog.Logger,
) CharacterService {
	if slots == nil {
		panic("slots cannot be nil")
	}
	if levelingService == nil {
		panic("levelingService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &characterService{
		slots:    slots,
		leveling: levelingService,
		defaults: defaults,
		baseXP:   baseXP,
		logger:   logger.With(slog.String("component", "character_service")),
	}
}

// GetOrInit implements CharacterService.GetOrInit.
func (s *characterService) GetOrInit(ctx context.Context) (*domain.Character, error) {
	var character domain.Character
	if store.ReadJSON(ctx, s.slots, store.SlotCharacter, &character) {
		return &character, nil
	}

	fresh, err := domain.NewCharacter(s.defaults, s.baseXP)
	if err != nil {
		return nil, fmt.Errorf("failed to create default character: %w", err)
	}

	store.WriteJSON(ctx, s.slots, store.SlotCharacter, fresh)

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("initialized default character",
		slog.Int("level", fresh.Level),
		slog.Int("next_level_xp", fresh.NextLevelXP))

	return fresh, nil
}

// UpdateStats implements CharacterService.UpdateStats.
// The character is lazily initialized if absent, matching GetOrInit.
func (s *characterService) UpdateStats(ctx context.Context, stats domain.CharacterStats) (*domain.Character, error) {
	if !stats.Valid() {
		return nil, domain.ErrCharacterStatsInvalid
	}

	character, err := s.GetOrInit(ctx)
	if err != nil {
		return nil, err
	}

	character.Stats = stats
	store.WriteJSON(ctx, s.slots, store.SlotCharacter, character)

	return character, nil
}

// AddXP implements CharacterService.AddXP.
func (s *characterService) AddXP(ctx context.Context, amount int) (*domain.Character, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var character domain.Character
	if !store.ReadJSON(ctx, s.slots, store.SlotCharacter, &character) {
		log.Warn("XP award skipped, no character initialized", slog.Int("amount", amount))
		return nil, ErrCharacterNotFound
	}

	updated, err := s.leveling.ApplyXP(&character, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to apply XP: %w", err)
	}

	store.WriteJSON(ctx, s.slots, store.SlotCharacter, updated)

	if updated.Level > character.Level {
		log.Info("character leveled up",
			slog.Int("from_level", character.Level),
			slog.Int("to_level", updated.Level),
			slog.Int("next_level_xp", updated.NextLevelXP))
	}

	return updated, nil
}
