package domain

import "errors"

// Character-specific validation errors
var (
	// ErrCharacterLevelInvalid is returned when a character's level is below 1.
	ErrCharacterLevelInvalid = errors.New("character level must be at least 1")

	// ErrCharacterXPNegative is returned when a character's XP is negative.
	ErrCharacterXPNegative = errors.New("character XP cannot be negative")

	// ErrCharacterNextLevelXPInvalid is returned when the next-level threshold
	// is not a positive integer.
	ErrCharacterNextLevelXPInvalid = errors.New("character next level XP must be positive")

	// ErrCharacterStatsInvalid is returned when any stat is below 1.
	ErrCharacterStatsInvalid = errors.New("character stats must each be at least 1")
)

// CharacterStats holds the four attribute scores tracked for the character.
// Each stat is a positive integer with a floor of 1.
type CharacterStats struct {
	Wisdom     int `json:"wisdom"`
	Focus      int `json:"focus"`
	Memory     int `json:"memory"`
	Discipline int `json:"discipline"`
}

// Valid reports whether every stat is at least 1.
func (s CharacterStats) Valid() bool {
	return s.Wisdom >= 1 && s.Focus >= 1 && s.Memory >= 1 && s.Discipline >= 1
}

// Character is the singleton progression record. XP accumulates without
// bound; Level is capped by the leveling curve's maximum. NextLevelXP is
// always the XP threshold required to reach Level+1.
//
// JSON field names match the persisted slot format of the original
// Scholar's Chronicle data, so existing slots round-trip unchanged.
type Character struct {
	Stats       CharacterStats `json:"stats"`
	XP          int            `json:"xp"`
	Level       int            `json:"level"`
	NextLevelXP int            `json:"nextLevelXP"`
}

// NewCharacter creates a fresh level-1 character with the given default
// stats and the base XP threshold for level 2.
func NewCharacter(defaults CharacterStats, baseXP int) (*Character, error) {
	c := &Character{
		Stats:       defaults,
		XP:          0,
		Level:       1,
		NextLevelXP: baseXP,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Character has valid data.
// Returns an error if any field fails validation.
func (c *Character) Validate() error {
	if !c.Stats.Valid() {
		return ErrCharacterStatsInvalid
	}

	if c.XP < 0 {
		return ErrCharacterXPNegative
	}

	if c.Level < 1 {
		return ErrCharacterLevelInvalid
	}

	if c.NextLevelXP < 1 {
		return ErrCharacterNextLevelXPInvalid
	}

	return nil
}

// Clone returns a deep copy of the character.
func (c *Character) Clone() *Character {
	cp := *c
	return &cp
}
