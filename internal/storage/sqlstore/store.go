package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/mauv0809/elo-ladder/internal/storage"
)

var _ storage.Store = (*store)(nil)

// store handles database operations for the players table.
type store struct {
	db       *sql.DB
	teardown func()
	mu       sync.RWMutex
}

// New creates a Store on an already migrated database. teardown, if not nil,
// runs on Close.
func New(db *sql.DB, teardown func()) storage.Store {
	return &store{
		db:       db,
		teardown: teardown,
	}
}

// Save replaces the players table in one transaction.
func (s *store) Save(ctx context.Context, players []rating.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM players"); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO players (name, position, rating, games_played, wins, losses, draws)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare player insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range players {
		_, err := stmt.ExecContext(ctx, p.Name, i, p.Rating, p.GamesPlayed, p.Wins, p.Losses, p.Draws)
		if err != nil {
			return fmt.Errorf("failed to insert player %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit players transaction: %w", err)
	}

	log.Info("Saved players to database", "players", len(players))
	return nil
}

// Load returns every player in the order they were saved.
func (s *store) Load(ctx context.Context) ([]rating.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, rating, games_played, wins, losses, draws
		FROM players
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]rating.PlayerRecord, 0)
	for rows.Next() {
		var p rating.PlayerRecord
		if err := rows.Scan(&p.Name, &p.Rating, &p.GamesPlayed, &p.Wins, &p.Losses, &p.Draws); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate player rows: %w", err)
	}

	log.Debug("Loaded players from database", "players", len(players))
	return players, nil
}

func (s *store) Close() error {
	if s.teardown != nil {
		log.Info("Closing database connection")
		s.teardown()
	}
	return nil
}
