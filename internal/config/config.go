package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes process environment variables, e.g. SOLITAIRE_WASTE_SIZE.
	EnvPrefix = "SOLITAIRE"
	// RuntimeEnvPrefix prefixes keys in the Nakama runtime env map, e.g. solitaire_waste_size.
	RuntimeEnvPrefix = "solitaire_"

	SaveBackendStorage = "storage"
	SaveBackendFile    = "file"
)

// ScoringConfig holds the points awarded for each kind of accepted action.
type ScoringConfig struct {
	WasteToTableau      int `mapstructure:"waste_to_tableau" json:"waste_to_tableau"`
	ToFoundation        int `mapstructure:"to_foundation" json:"to_foundation"`
	FoundationToTableau int `mapstructure:"foundation_to_tableau" json:"foundation_to_tableau"`
	RevealTableau       int `mapstructure:"reveal_tableau" json:"reveal_tableau"`
	RecycleWaste        int `mapstructure:"recycle_waste" json:"recycle_waste"`
}

// GameConfig is read once when a game is constructed; the engine never writes it.
type GameConfig struct {
	DeckPassesAllowed int `mapstructure:"deck_passes_allowed" json:"deck_passes_allowed" validate:"gte=0"`
	// WasteSize is how many waste cards the client fans out (1 or 3). Only the
	// top waste card is ever playable.
	WasteSize         int           `mapstructure:"waste_size" json:"waste_size" validate:"oneof=1 3"`
	TimeBudgetSeconds int           `mapstructure:"time_budget_seconds" json:"time_budget_seconds" validate:"gt=0"`
	BonusMultiplier   int           `mapstructure:"bonus_multiplier" json:"bonus_multiplier" validate:"gte=0"`
	Scoring           ScoringConfig `mapstructure:"scoring" json:"scoring"`

	SaveBackend string `mapstructure:"save_backend" json:"save_backend" validate:"oneof=storage file"`
	SaveDir     string `mapstructure:"save_dir" json:"save_dir" validate:"required_if=SaveBackend file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deck_passes_allowed", 3)
	v.SetDefault("waste_size", 1)
	v.SetDefault("time_budget_seconds", 300)
	v.SetDefault("bonus_multiplier", 10)
	v.SetDefault("scoring.waste_to_tableau", 5)
	v.SetDefault("scoring.to_foundation", 10)
	v.SetDefault("scoring.foundation_to_tableau", -15)
	v.SetDefault("scoring.reveal_tableau", 5)
	v.SetDefault("scoring.recycle_waste", -100)
	v.SetDefault("save_backend", SaveBackendStorage)
	v.SetDefault("save_dir", "")
}

// Default returns the built-in configuration.
func Default() GameConfig {
	v := viper.New()
	setDefaults(v)
	var cfg GameConfig
	// Defaults always decode; a failure here is a programming error.
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config defaults do not decode: %v", err))
	}
	return cfg
}

// Load reads an optional config file (YAML, JSON or TOML, by extension) and
// SOLITAIRE_* environment variables on top of the defaults. Environment
// variables take precedence over the file.
func Load(path string) (*GameConfig, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read game config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return decode(v)
}

// FromRuntimeEnv builds the configuration from the Nakama runtime env map.
// Keys are the config keys with dots replaced by underscores and the
// solitaire_ prefix, e.g. solitaire_scoring_to_foundation.
func FromRuntimeEnv(env map[string]string) (*GameConfig, error) {
	v := viper.New()
	setDefaults(v)

	for _, key := range v.AllKeys() {
		name := RuntimeEnvPrefix + strings.ReplaceAll(key, ".", "_")
		if val, ok := env[name]; ok {
			v.Set(key, val)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*GameConfig, error) {
	var cfg GameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func Validate(cfg GameConfig) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}
	return nil
}
