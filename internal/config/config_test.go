package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, StorageCSV, cfg.Storage)
	assert.Equal(t, "data/players.csv", cfg.DataFile)
	assert.Equal(t, 32.0, cfg.KFactor)
	assert.Equal(t, 1200.0, cfg.InitialRating)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "ladder.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
	assert.Equal(t, "elo:players", cfg.Redis.Key)
	assert.Equal(t, "ladder-events", cfg.PubSub.Topic)
	assert.False(t, cfg.Slack.Enabled())
	assert.False(t, cfg.PubSub.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("ELO_STORAGE", "redis")
	t.Setenv("ELO_K_FACTOR", "24")
	t.Setenv("ELO_INITIAL_RATING", "1500")
	t.Setenv("ELO_SEED", "7")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("GCP_PROJECT", "demo")
	t.Setenv("DRY_RUN", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, 24.0, cfg.KFactor)
	assert.Equal(t, 1500.0, cfg.InitialRating)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.Slack.Enabled())
	assert.True(t, cfg.PubSub.Enabled())
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"zero k-factor", "ELO_K_FACTOR", "0", "ELO_K_FACTOR"},
		{"negative k-factor", "ELO_K_FACTOR", "-5", "ELO_K_FACTOR"},
		{"negative rating", "ELO_INITIAL_RATING", "-1", "ELO_INITIAL_RATING"},
		{"unknown backend", "ELO_STORAGE", "mongo", "ELO_STORAGE"},
		{"unknown log format", "LOG_FORMAT", "xml", "LOG_FORMAT"},
		{"unknown log level", "LOG_LEVEL", "loud", "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			cfg, err := Parse()
			require.NoError(t, err, "parsing leaves validation to the caller")

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_UnparsableNumber(t *testing.T) {
	t.Setenv("ELO_K_FACTOR", "lots")
	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestValidate_AfterOverride(t *testing.T) {
	t.Setenv("ELO_STORAGE", "bogus")
	t.Setenv("ELO_K_FACTOR", "-1")

	cfg, err := Parse()
	require.NoError(t, err)
	require.Error(t, cfg.Validate())

	cfg.Storage = StorageCSV
	cfg.KFactor = 16
	assert.NoError(t, cfg.Validate())
}
