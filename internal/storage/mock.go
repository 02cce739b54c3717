package storage

import (
	"context"
	"sync"

	"github.com/mauv0809/elo-ladder/internal/rating"
)

var _ Store = (*Mock)(nil)

// Mock is an in-memory Store for tests. It is safe for concurrent use.
type Mock struct {
	mu      sync.Mutex
	players []rating.PlayerRecord

	SaveErr error
	LoadErr error

	SaveCalls int
	LoadCalls int
}

// NewMock creates a Mock pre-populated with players.
func NewMock(players ...rating.PlayerRecord) *Mock {
	return &Mock{players: players}
}

func (m *Mock) Save(ctx context.Context, players []rating.PlayerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.players = append([]rating.PlayerRecord(nil), players...)
	return nil
}

func (m *Mock) Load(ctx context.Context) ([]rating.PlayerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]rating.PlayerRecord(nil), m.players...), nil
}

func (m *Mock) Close() error {
	return nil
}

// Players returns what was last saved.
func (m *Mock) Players() []rating.PlayerRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]rating.PlayerRecord(nil), m.players...)
}
