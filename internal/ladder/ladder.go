// Package ladder is the application layer of the rating ladder.
package ladder

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/elo-ladder/internal/leaderboard"
	"github.com/mauv0809/elo-ladder/internal/matchmaking"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/notifier"
	"github.com/mauv0809/elo-ladder/internal/pubsub"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/mauv0809/elo-ladder/internal/storage"
)

// New creates a new Service around an empty registry.
func New(store storage.Store, notifier notifier.Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, opts Options) *Service {
	return &Service{
		registry: rating.NewRegistry(),
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
		opts:     opts,
	}
}

// Load replaces the registry with what the store holds and returns the
// number of players loaded. On error the registry is left unchanged.
func (s *Service) Load(ctx context.Context) (int, error) {
	start := time.Now()
	records, err := s.store.Load(ctx)
	s.metrics.ObserveStorageDuration("load", time.Since(start).Seconds())
	if err != nil {
		return 0, fmt.Errorf("failed to load players: %w", err)
	}
	if err := s.registry.Replace(records); err != nil {
		return 0, fmt.Errorf("failed to restore players: %w", err)
	}
	s.metrics.SetPlayers(len(records))
	log.Info("Loaded players", "count", len(records))
	return len(records), nil
}

// Save writes every player to the store.
func (s *Service) Save(ctx context.Context) error {
	players := s.registry.Players()
	start := time.Now()
	err := s.store.Save(ctx, players)
	s.metrics.ObserveStorageDuration("save", time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}
	log.Info("Saved players", "count", len(players))
	return nil
}

// AddPlayer registers name at the configured initial rating.
func (s *Service) AddPlayer(ctx context.Context, name string) error {
	if err := s.registry.AddPlayer(name, s.opts.InitialRating); err != nil {
		s.reject(err)
		return err
	}
	s.metrics.IncPlayersAdded()
	s.metrics.SetPlayers(s.registry.PlayerCount())
	log.Info("Player added", "name", name, "rating", s.opts.InitialRating)

	event := pubsub.PlayerAdded{
		ID:      uuid.NewString(),
		Name:    name,
		Rating:  s.opts.InitialRating,
		AddedAt: time.Now().UTC(),
	}
	if err := s.pubsub.SendMessage(ctx, pubsub.EventPlayerAdded, event); err != nil {
		log.Error("Failed to publish player added event", "error", err, "name", name)
	}
	return nil
}

// RecordMatch rates a match between two registered players. Publishing and
// notification failures are logged and do not undo the rating change.
func (s *Service) RecordMatch(ctx context.Context, name1, name2 string, result rating.Result) (rating.Outcome, error) {
	outcome, err := s.registry.RecordMatch(name1, name2, result, s.opts.KFactor)
	if err != nil {
		s.reject(err)
		return rating.Outcome{}, err
	}
	s.metrics.IncMatchesRecorded(result.String())
	s.metrics.ObserveRatingChange(math.Abs(outcome.Delta1()))
	s.metrics.ObserveRatingChange(math.Abs(outcome.Delta2()))
	log.Info("Match recorded", "player1", name1, "player2", name2, "result", result,
		"delta1", outcome.Delta1(), "delta2", outcome.Delta2())

	event := pubsub.MatchRecorded{
		ID:         uuid.NewString(),
		Outcome:    outcome,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.pubsub.SendMessage(ctx, pubsub.EventMatchRecorded, event); err != nil {
		log.Error("Failed to publish match recorded event", "error", err, "matchID", event.ID)
	}
	if err := s.notifier.SendMatchResult(outcome, s.opts.DryRun); err != nil {
		log.Error("Failed to send match notification", "error", err, "matchID", event.ID)
	}
	return outcome, nil
}

// FindOpponent picks a random opponent for a registered player.
func (s *Service) FindOpponent(name string, rnd matchmaking.Random) (string, error) {
	if _, ok := s.registry.FindPlayer(name); !ok {
		return "", fmt.Errorf("%w: %q", rating.ErrPlayerNotFound, name)
	}
	return matchmaking.FindOpponent(s.registry.PlayerNames(), name, rnd)
}

// Player returns a snapshot of one player.
func (s *Service) Player(name string) (rating.PlayerRecord, bool) {
	p, ok := s.registry.FindPlayer(name)
	if !ok {
		return rating.PlayerRecord{}, false
	}
	return p.Record(), true
}

// PlayerNames lists players in registration order.
func (s *Service) PlayerNames() []string {
	return s.registry.PlayerNames()
}

// Leaderboard returns the current standings.
func (s *Service) Leaderboard() []leaderboard.Entry {
	return leaderboard.Rank(s.registry.Players())
}

// AnnounceLeaderboard posts the current standings through the notifier.
func (s *Service) AnnounceLeaderboard() error {
	if err := s.notifier.SendLeaderboard(s.Leaderboard(), s.opts.DryRun); err != nil {
		return fmt.Errorf("failed to announce leaderboard: %w", err)
	}
	return nil
}

func (s *Service) reject(err error) {
	reason := rejectReason(err)
	s.metrics.IncRejected(reason)
	log.Warn("Request rejected", "reason", reason, "error", err)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, rating.ErrEmptyName):
		return "empty_name"
	case errors.Is(err, rating.ErrDuplicatePlayer):
		return "duplicate_player"
	case errors.Is(err, rating.ErrPlayerNotFound):
		return "player_not_found"
	case errors.Is(err, rating.ErrSelfMatch):
		return "self_match"
	case errors.Is(err, rating.ErrInvalidResult):
		return "invalid_result"
	case errors.Is(err, rating.ErrInvalidKFactor):
		return "invalid_k_factor"
	default:
		return "other"
	}
}
