package notifier

import (
	"sync"

	"github.com/mauv0809/elo-ladder/internal/leaderboard"
	"github.com/mauv0809/elo-ladder/internal/rating"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Errors returned by the corresponding methods.
	MatchResultErr error
	LeaderboardErr error

	SendMatchResultCalls []rating.Outcome
	SendLeaderboardCalls [][]leaderboard.Entry
	DryRunFlags          []bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = nil
	m.SendLeaderboardCalls = nil
	m.DryRunFlags = nil
}

func (m *Mock) SendMatchResult(outcome rating.Outcome, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, outcome)
	m.DryRunFlags = append(m.DryRunFlags, dryRun)
	return m.MatchResultErr
}

func (m *Mock) SendLeaderboard(entries []leaderboard.Entry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, entries)
	m.DryRunFlags = append(m.DryRunFlags, dryRun)
	return m.LeaderboardErr
}

// MatchResults returns a copy of the recorded match notifications.
func (m *Mock) MatchResults() []rating.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]rating.Outcome, len(m.SendMatchResultCalls))
	copy(out, m.SendMatchResultCalls)
	return out
}
