package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/inner-demons/internal/models"
)

// DefaultSettingsPath is read when INNER_DEMONS_SETTINGS is not set.
const DefaultSettingsPath = "Settings.yaml"

// Rules are the numbers the turn engine is built from.
type Rules struct {
	StartingResolve       uint `yaml:"starting_resolve" env:"INNER_DEMONS_STARTING_RESOLVE"`
	StartingDemonPower    uint `yaml:"starting_demon_power" env:"INNER_DEMONS_DEMON_POWER"`
	StartingDemonStunTime uint `yaml:"starting_demon_stun_time" env:"INNER_DEMONS_DEMON_STUN_TIME"`
	HandSize              int  `yaml:"hand_size" env:"INNER_DEMONS_HAND_SIZE"`
}

// Config holds the application configuration.
type Config struct {
	Rules        Rules              `yaml:"rules"`
	Demons       []models.DemonKind `yaml:"demons"`
	StartingDeck []models.CardKind  `yaml:"starting_deck"`

	// Seed drives every shuffle. Zero picks a fresh random seed.
	Seed     int64  `yaml:"seed" env:"INNER_DEMONS_SEED"`
	LogLevel string `yaml:"log_level" env:"INNER_DEMONS_LOG_LEVEL"`
	LogFile  string `yaml:"log_file" env:"INNER_DEMONS_LOG_FILE"`

	GeminiAPIKey string `yaml:"-" env:"GEMINI_API_KEY"`
}

// DefaultRules returns the standard rule numbers.
func DefaultRules() Rules {
	return Rules{
		StartingResolve:       30,
		StartingDemonPower:    1,
		StartingDemonStunTime: 0,
		HandSize:              5,
	}
}

// Default returns the configuration used when no settings file exists:
// every demon, and one card of each kind.
func Default() Config {
	return Config{
		Rules:        DefaultRules(),
		Demons:       append([]models.DemonKind(nil), models.DemonKinds...),
		StartingDeck: append([]models.CardKind(nil), models.CardKinds...),
		LogLevel:     "info",
	}
}

// LoadConfig loads the settings file, if present, and then applies
// environment overrides.
func LoadConfig() (*Config, error) {
	path := os.Getenv("INNER_DEMONS_SETTINGS")
	required := path != ""
	if path == "" {
		path = DefaultSettingsPath
	}
	return Load(path, required)
}

// Load reads settings from path on top of the defaults. A missing file is
// an error only when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the rule numbers and rosters.
func (c *Config) Validate() error {
	if c.Rules.StartingResolve == 0 {
		return fmt.Errorf("starting_resolve must be positive")
	}
	if c.Rules.HandSize < 1 {
		return fmt.Errorf("hand_size must be at least 1, got %d", c.Rules.HandSize)
	}
	if len(c.Demons) == 0 {
		return fmt.Errorf("at least one demon is required")
	}
	seen := make(map[models.DemonKind]bool, len(c.Demons))
	for _, d := range c.Demons {
		if seen[d] {
			return fmt.Errorf("demon %s listed twice", d)
		}
		seen[d] = true
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
}
