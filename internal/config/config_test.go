package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/inner-demons/internal/models"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, DefaultRules(), cfg.Rules)
	assert.Equal(t, models.DemonKinds, cfg.Demons)
	assert.Len(t, cfg.StartingDeck, 10)
}

func TestLoadMissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	assert.ErrorContains(t, err, "read settings")
}

func TestLoadSettingsFile(t *testing.T) {
	path := writeSettings(t, `
rules:
  starting_resolve: 20
  starting_demon_power: 5
  starting_demon_stun_time: 2
demons: [fear, doubt]
starting_deck: [angry, angry, peaceful]
seed: 7
log_level: debug
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, uint(20), cfg.Rules.StartingResolve)
	assert.Equal(t, uint(5), cfg.Rules.StartingDemonPower)
	assert.Equal(t, uint(2), cfg.Rules.StartingDemonStunTime)
	assert.Equal(t, 5, cfg.Rules.HandSize, "unset keys keep their defaults")
	assert.Equal(t, []models.DemonKind{models.Fear, models.Doubt}, cfg.Demons)
	assert.Equal(t, []models.CardKind{models.Angry, models.Angry, models.Peaceful}, cfg.StartingDeck)
	assert.Equal(t, int64(7), cfg.Seed)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeSettings(t, "rules:\n  starting_resolve: 20\n")
	t.Setenv("INNER_DEMONS_STARTING_RESOLVE", "12")
	t.Setenv("INNER_DEMONS_SEED", "99")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, uint(12), cfg.Rules.StartingResolve)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("INNER_DEMONS_HAND_SIZE", "five")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	assert.ErrorContains(t, err, "parse env:")
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := map[string]string{
		"unknown card":   "starting_deck: [angry, grumpy]\n",
		"unknown demon":  "demons: [fear, anger]\n",
		"zero resolve":   "rules:\n  starting_resolve: 0\n",
		"zero hand":      "rules:\n  hand_size: 0\n",
		"no demons":      "demons: []\n",
		"repeated demon": "demons: [fear, fear]\n",
		"bad log level":  "log_level: loud\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeSettings(t, body), true)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigReadsSettingsEnv(t *testing.T) {
	t.Setenv("INNER_DEMONS_SETTINGS", writeSettings(t, "rules:\n  hand_size: 3\n"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Rules.HandSize)
}

func TestOpenLoggerWritesToFile(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "game.log")

	logger, closeLog, err := cfg.OpenLogger(nil)
	require.NoError(t, err)
	logger.Debug("draw", "card", 3)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=draw card=3")
}

func TestOpenLoggerFallback(t *testing.T) {
	cfg := Default()
	var buf strings.Builder

	logger, _, err := cfg.OpenLogger(&buf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
