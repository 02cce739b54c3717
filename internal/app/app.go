// Package app wires configuration into a running ladder.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/config"
	"github.com/mauv0809/elo-ladder/internal/database"
	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/notifier"
	"github.com/mauv0809/elo-ladder/internal/notifier/slack"
	"github.com/mauv0809/elo-ladder/internal/pubsub"
	"github.com/mauv0809/elo-ladder/internal/storage"
	"github.com/mauv0809/elo-ladder/internal/storage/csvfile"
	"github.com/mauv0809/elo-ladder/internal/storage/redisstore"
	"github.com/mauv0809/elo-ladder/internal/storage/sqlstore"
	"github.com/prometheus/client_golang/prometheus"
)

// App is everything a command needs, wired from configuration.
type App struct {
	Config   config.Config
	Service  *ladder.Service
	Store    storage.Store
	PubSub   pubsub.PubSubClient
	Metrics  *metrics.Service
	Registry *prometheus.Registry
}

// New builds the ladder described by cfg and loads its players.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	startTime := time.Now()

	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)

	var notif notifier.Notifier = notifier.NewNop()
	if cfg.Slack.Enabled() {
		notif = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	}

	publisher := pubsub.NewNop()
	if cfg.PubSub.Enabled() {
		publisher, err = pubsub.New(ctx, cfg.PubSub.ProjectID, cfg.PubSub.Topic)
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	opts := ladder.Options{
		KFactor:       cfg.KFactor,
		InitialRating: cfg.InitialRating,
		DryRun:        cfg.DryRun,
	}
	a := &App{
		Config:   cfg,
		Service:  ladder.New(store, notif, metricsSvc, publisher, opts),
		Store:    store,
		PubSub:   publisher,
		Metrics:  metricsSvc,
		Registry: reg,
	}

	if _, err := a.Service.Load(ctx); err != nil {
		a.Close()
		return nil, err
	}
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds(), "storage", cfg.Storage)
	return a, nil
}

// OpenStore connects to the storage backend selected by cfg.Storage.
func OpenStore(cfg config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case config.StorageCSV:
		return csvfile.New(cfg.DataFile), nil
	case config.StorageSQLite:
		db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return sqlstore.New(db, teardown), nil
	case config.StorageRedis:
		rc := redisstore.DefaultConfig()
		rc.URL = cfg.Redis.URL
		rc.Key = cfg.Redis.Key
		return redisstore.New(rc)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// Location describes where the players are kept, for user-facing messages.
func (a *App) Location() string {
	switch a.Config.Storage {
	case config.StorageCSV:
		return a.Config.DataFile
	case config.StorageSQLite:
		if a.Config.Turso.PrimaryURL != "" {
			return a.Config.Turso.PrimaryURL
		}
		return a.Config.DBName
	default:
		return a.Config.Redis.URL + " (" + a.Config.Redis.Key + ")"
	}
}

// Close releases the event publisher and the store.
func (a *App) Close() error {
	return errors.Join(a.PubSub.Close(), a.Store.Close())
}
