package notifier

import (
	"github.com/mauv0809/elo-ladder/internal/leaderboard"
	"github.com/mauv0809/elo-ladder/internal/rating"
)

// Notifier announces ladder activity to an external channel.
type Notifier interface {
	SendMatchResult(outcome rating.Outcome, dryRun bool) error
	SendLeaderboard(entries []leaderboard.Entry, dryRun bool) error
}

type nop struct{}

// NewNop returns a Notifier that discards every notification.
func NewNop() Notifier {
	return nop{}
}

func (nop) SendMatchResult(rating.Outcome, bool) error { return nil }
func (nop) SendLeaderboard([]leaderboard.Entry, bool) error { return nil }
