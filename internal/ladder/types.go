package ladder

import (
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/notifier"
	"github.com/mauv0809/elo-ladder/internal/pubsub"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/mauv0809/elo-ladder/internal/storage"
)

// Options tunes how the ladder rates matches.
type Options struct {
	KFactor       float64
	InitialRating float64
	// DryRun logs notifications instead of sending them.
	DryRun bool
}

// DefaultOptions returns the standard Elo settings.
func DefaultOptions() Options {
	return Options{
		KFactor:       rating.DefaultKFactor,
		InitialRating: rating.DefaultRating,
	}
}

// Service ties the in-memory registry to persistence, events and notifications.
type Service struct {
	registry *rating.Registry
	store    storage.Store
	notifier notifier.Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
	opts     Options
}
