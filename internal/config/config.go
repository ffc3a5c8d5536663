package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Storage    StorageConfig    `mapstructure:"storage"    validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	Leveling   LevelingConfig   `mapstructure:"leveling"   validate:"required"`
	Quests     QuestsConfig     `mapstructure:"quests"     validate:"required"`
	Flashcards FlashcardsConfig `mapstructure:"flashcards" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig locates the local slot database.
type StorageConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AuthConfig contains authentication settings for the local passphrase lock.
type AuthConfig struct {
	TokenSecret          string `mapstructure:"token_secret"           validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// LevelingConfig parameterizes the XP curve: the threshold for the next
// level is floor(base_xp * multiplier^(level-1)), capped at max_level.
type LevelingConfig struct {
	BaseXP     int     `mapstructure:"base_xp"    validate:"required,gt=0"`
	Multiplier float64 `mapstructure:"multiplier" validate:"required,gt=1"`
	MaxLevel   int     `mapstructure:"max_level"  validate:"required,gt=1"`
}

// QuestsConfig holds the default XP reward per difficulty, used when a
// quest is created without an explicit reward.
type QuestsConfig struct {
	BeginnerXP     int `mapstructure:"beginner_xp"     validate:"required,gt=0"`
	IntermediateXP int `mapstructure:"intermediate_xp" validate:"required,gt=0"`
	AdvancedXP     int `mapstructure:"advanced_xp"     validate:"required,gt=0"`
	ExpertXP       int `mapstructure:"expert_xp"       validate:"required,gt=0"`
}

// FlashcardsConfig bounds decks and parameterizes review rewards.
// ReviewIntervals is reserved for spaced-repetition scheduling; no engine
// consumes it yet.
type FlashcardsConfig struct {
	MaxCardsPerDeck int   `mapstructure:"max_cards_per_deck" validate:"required,gt=0"`
	StudyPassXP     int   `mapstructure:"study_pass_xp"      validate:"required,gt=0"`
	ReviewIntervals []int `mapstructure:"review_intervals"`
}
