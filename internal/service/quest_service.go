package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/scholars-chronicle/api/internal/config"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/platform/logger"
	"github.com/scholars-chronicle/api/internal/store"
)

// CreateQuestParams carries the caller-supplied fields of a new quest.
// XPReward of zero means "use the default reward for the difficulty".
type CreateQuestParams struct {
	Title       string
	Description string
	Subject     string
	Unit        string
	Topic       string
	Type        domain.QuestType
	Difficulty  domain.QuestDifficulty
	XPReward    int
}

// QuestService owns quest creation and the one-way completion transition,
// including the exactly-once XP award into the character.
type QuestService interface {
	// Create assigns a fresh ID, marks the quest incomplete, appends it to
	// the collection and persists.
	Create(ctx context.Context, params CreateQuestParams) (*domain.Quest, error)

	// Complete marks the quest completed and awards its XP to the
	// character exactly once. Completing an already-completed quest is a
	// no-op returning the quest unchanged with a nil character; an unknown
	// quest ID returns ErrQuestNotFound.
	Complete(ctx context.Context, questID string) (*domain.Quest, *domain.Character, error)

	// List returns all quests in creation order.
	List(ctx context.Context) []domain.Quest

	// BySubject returns quests whose subject matches case-insensitively.
	BySubject(ctx context.Context, subject string) []domain.Quest

	// Delete removes a quest from the collection. Pure list removal: no
	// XP is awarded or revoked. Returns ErrQuestNotFound for unknown IDs.
	Delete(ctx context.Context, questID string) error
}

// Verify interface compliance at compile time
var _ QuestService = (*questService)(nil)

// questService implements the QuestService interface.
type questService struct {
	slots      store.SlotStore
	characters CharacterService
	rewards    config.QuestsConfig
	logger     *slog.Logger
}

// NewQuestService creates a new QuestService.
// If logger is nil, the default logger is used.
func NewQuestService(
	slots store.SlotStore,
	characters CharacterService,
	rewards config.QuestsConfig,
	logger *slog.Logger,
) QuestService {
	if slots == nil {
		panic("slots cannot be nil")
	}
	if characters == nil {
		panic("characters cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &questService{
		slots:      slots,
		characters: characters,
		rewards:    rewards,
		logger:     logger.With(slog.String("component", "quest_service")),
	}
}

// defaultReward maps a difficulty to its configured XP reward.
func (s *questService) defaultReward(difficulty domain.QuestDifficulty) int {
	switch difficulty {
	case domain.QuestDifficultyBeginner:
		return s.rewards.BeginnerXP
	case domain.QuestDifficultyIntermediate:
		return s.rewards.IntermediateXP
	case domain.QuestDifficultyAdvanced:
		return s.rewards.AdvancedXP
	case domain.QuestDifficultyExpert:
		return s.rewards.ExpertXP
	default:
		return 0
	}
}

// load reads the quest collection, treating an absent slot as empty.
func (s *questService) load(ctx context.Context) []domain.Quest {
	var quests []domain.Quest
	store.ReadJSON(ctx, s.slots, store.SlotQuests, &quests)
	return quests
}

// Create implements QuestService.Create.
func (s *questService) Create(ctx context.Context, params CreateQuestParams) (*domain.Quest, error) {
	reward := params.XPReward
	if reward == 0 {
		reward = s.defaultReward(params.Difficulty)
	}

	quest, err := domain.NewQuest(
		params.Title,
		params.Description,
		params.Subject,
		params.Unit,
		params.Topic,
		params.Type,
		params.Difficulty,
		reward,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create quest: %w", err)
	}

	quests := append(s.load(ctx), *quest)
	store.WriteJSON(ctx, s.slots, store.SlotQuests, quests)

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("quest created",
		slog.String("quest_id", quest.ID),
		slog.String("difficulty", string(quest.Difficulty)),
		slog.Int("xp_reward", quest.XPReward))

	return quest, nil
}

// Complete implements QuestService.Complete.
//
// The completed flag is persisted before the XP award is applied. A crash
// between the two writes leaves the quest complete with no XP granted;
// this two-step, non-transactional ordering is an accepted risk of the
// design and is not repaired here.
func (s *questService) Complete(ctx context.Context, questID string) (*domain.Quest, *domain.Character, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	quests := s.load(ctx)
	idx := -1
	for i := range quests {
		if quests[i].ID == questID {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil, nil, ErrQuestNotFound
	}

	if quests[idx].Completed {
		// Idempotent: repeating the completion never re-awards XP.
		log.Debug("quest already completed", slog.String("quest_id", questID))
		quest := quests[idx]
		return &quest, nil, nil
	}

	quests[idx].Completed = true
	store.WriteJSON(ctx, s.slots, store.SlotQuests, quests)

	quest := quests[idx]

	character, err := s.characters.AddXP(ctx, quest.XPReward)
	if err != nil {
		// The quest stays completed; the award is not retried.
		log.Error("quest completed but XP award failed",
			slog.String("quest_id", questID),
			slog.Int("xp_reward", quest.XPReward),
			slog.String("error", err.Error()))
		return &quest, nil, nil
	}

	log.Info("quest completed",
		slog.String("quest_id", questID),
		slog.Int("xp_reward", quest.XPReward),
		slog.Int("character_level", character.Level))

	return &quest, character, nil
}

// List implements QuestService.List.
func (s *questService) List(ctx context.Context) []domain.Quest {
	return s.load(ctx)
}

// BySubject implements QuestService.BySubject.
func (s *questService) BySubject(ctx context.Context, subject string) []domain.Quest {
	var matched []domain.Quest
	for _, q := range s.load(ctx) {
		if strings.EqualFold(q.Subject, subject) {
			matched = append(matched, q)
		}
	}
	return matched
}

// Delete implements QuestService.Delete.
func (s *questService) Delete(ctx context.Context, questID string) error {
	quests := s.load(ctx)
	for i := range quests {
		if quests[i].ID == questID {
			quests = append(quests[:i], quests[i+1:]...)
			store.WriteJSON(ctx, s.slots, store.SlotQuests, quests)
			return nil
		}
	}
	return ErrQuestNotFound
}
