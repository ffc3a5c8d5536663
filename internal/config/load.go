package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config.yaml and from
// CHRONICLE_-prefixed environment variables. Environment variables take
// precedence over file values. Returns a populated Config or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CHRONICLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers defaults matching the original Scholar's Chronicle
// data table: 100 base XP with 1.5x growth to level 50, difficulty rewards
// of 50/75/100/150, decks capped at 100 cards, 10 XP per study pass.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("storage.path", "chronicle.db")

	// Empty default keeps the key visible to AutomaticEnv; validation
	// rejects the empty value if the secret is never provided.
	v.SetDefault("auth.token_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetDefault("leveling.base_xp", 100)
	v.SetDefault("leveling.multiplier", 1.5)
	v.SetDefault("leveling.max_level", 50)

	v.SetDefault("quests.beginner_xp", 50)
	v.SetDefault("quests.intermediate_xp", 75)
	v.SetDefault("quests.advanced_xp", 100)
	v.SetDefault("quests.expert_xp", 150)

	v.SetDefault("flashcards.max_cards_per_deck", 100)
	v.SetDefault("flashcards.study_pass_xp", 10)
	v.SetDefault("flashcards.review_intervals", []int{1, 3, 7, 14, 30})
}
