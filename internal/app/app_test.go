package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/mauv0809/elo-ladder/internal/config"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Storage:       config.StorageCSV,
		DataFile:      filepath.Join(t.TempDir(), "players.csv"),
		KFactor:       rating.DefaultKFactor,
		InitialRating: rating.DefaultRating,
		DBName:        ":memory:",
		Redis:         config.RedisConfig{Key: "elo:test"},
		Log:           config.LogConfig{Level: "info", Format: "text"},
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	players := []rating.PlayerRecord{{Name: "Alice", Rating: 1216, GamesPlayed: 1, Wins: 1}}

	mr := miniredis.RunT(t)

	backends := []string{config.StorageCSV, config.StorageSQLite, config.StorageRedis}
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Storage = backend
			cfg.Redis.URL = "redis://" + mr.Addr()

			store, err := OpenStore(cfg)
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.Save(ctx, players))
			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, players, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Storage = "tape"
		_, err := OpenStore(cfg)
		assert.Error(t, err)
	})
}

func TestNew_LoadsExistingPlayers(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.DataFile, []byte("Alice,1216,1,1,0,0\nBob,1184,1,0,1,0\n"), 0o644))

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, []string{"Alice", "Bob"}, a.Service.PlayerNames())
	assert.Equal(t, cfg.DataFile, a.Location())
}

func TestNew_MissingFileStartsEmpty(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	assert.Empty(t, a.Service.PlayerNames())
}

func TestNew_CorruptFile(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.DataFile, []byte("Alice,not-a-number,0,0,0,0\n"), 0o644))

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	a := &App{Config: testConfig(t)}

	a.Config.Storage = config.StorageSQLite
	assert.Equal(t, ":memory:", a.Location())

	a.Config.Turso.PrimaryURL = "libsql://example.turso.io"
	assert.Equal(t, "libsql://example.turso.io", a.Location())

	a.Config.Storage = config.StorageRedis
	a.Config.Redis.URL = "redis://localhost:6379"
	assert.Equal(t, "redis://localhost:6379 (elo:test)", a.Location())
}
