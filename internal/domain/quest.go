package domain

import (
	"errors"

	"github.com/google/uuid"
)

// QuestType classifies what kind of study work a quest represents.
type QuestType string

// Possible quest types
const (
	QuestTypeLearning   QuestType = "learning"
	QuestTypePractice   QuestType = "practice"
	QuestTypeRevision   QuestType = "revision"
	QuestTypeAssessment QuestType = "assessment"
)

// QuestDifficulty grades a quest and drives its default XP reward.
type QuestDifficulty string

// Possible quest difficulties
const (
	QuestDifficultyBeginner     QuestDifficulty = "beginner"
	QuestDifficultyIntermediate QuestDifficulty = "intermediate"
	QuestDifficultyAdvanced     QuestDifficulty = "advanced"
	QuestDifficultyExpert       QuestDifficulty = "expert"
)

// Quest-specific validation errors
var (
	// ErrQuestIDEmpty is returned when a quest ID is empty.
	ErrQuestIDEmpty = errors.New("quest ID cannot be empty")

	// ErrQuestTitleEmpty is returned when a quest title is empty.
	ErrQuestTitleEmpty = errors.New("quest title cannot be empty")

	// ErrQuestTypeInvalid is returned when a quest type is not a known value.
	ErrQuestTypeInvalid = errors.New("invalid quest type")

	// ErrQuestDifficultyInvalid is returned when a quest difficulty is not a known value.
	ErrQuestDifficultyInvalid = errors.New("invalid quest difficulty")

	// ErrQuestXPRewardInvalid is returned when a quest XP reward is not positive.
	ErrQuestXPRewardInvalid = errors.New("quest XP reward must be positive")
)

// Quest is a discrete learning task with a completion flag and an XP reward.
// Completed transitions false to true exactly once; the reverse transition
// is not supported.
type Quest struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Subject     string          `json:"subject"`
	Unit        string          `json:"unit"`
	Topic       string          `json:"topic"`
	Type        QuestType       `json:"type"`
	Difficulty  QuestDifficulty `json:"difficulty"`
	Completed   bool            `json:"completed"`
	XPReward    int             `json:"xpReward"`
}

// NewQuest creates a quest with a fresh ID and Completed set to false.
// Returns an error if validation fails.
func NewQuest(
	title, description, subject, unit, topic string,
	questType QuestType,
	difficulty QuestDifficulty,
	xpReward int,
) (*Quest, error) {
	q := &Quest{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Subject:     subject,
		Unit:        unit,
		Topic:       topic,
		Type:        questType,
		Difficulty:  difficulty,
		Completed:   false,
		XPReward:    xpReward,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Quest has valid data.
func (q *Quest) Validate() error {
	if q.ID == "" {
		return ErrQuestIDEmpty
	}

	if q.Title == "" {
		return ErrQuestTitleEmpty
	}

	if !q.Type.Valid() {
		return ErrQuestTypeInvalid
	}

	if !q.Difficulty.Valid() {
		return ErrQuestDifficultyInvalid
	}

	if q.XPReward < 1 {
		return ErrQuestXPRewardInvalid
	}

	return nil
}

// Valid reports whether the quest type is a known value.
func (t QuestType) Valid() bool {
	switch t {
	case QuestTypeLearning, QuestTypePractice, QuestTypeRevision, QuestTypeAssessment:
		return true
	default:
		return false
	}
}

// Valid reports whether the quest difficulty is a known value.
func (d QuestDifficulty) Valid() bool {
	switch d {
	case QuestDifficultyBeginner,
		QuestDifficultyIntermediate,
		QuestDifficultyAdvanced,
		QuestDifficultyExpert:
		return true
	default:
		return false
	}
}
