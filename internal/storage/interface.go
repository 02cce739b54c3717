package storage

import (
	"context"

	"github.com/mauv0809/elo-ladder/internal/rating"
)

// Store persists the full set of player records between sessions.
// Save replaces whatever was stored before; Load returns the records in the
// order they were saved and an empty slice when nothing has been saved yet.
type Store interface {
	Save(ctx context.Context, players []rating.PlayerRecord) error
	Load(ctx context.Context) ([]rating.PlayerRecord, error)
	Close() error
}
