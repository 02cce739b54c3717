package csvfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/mauv0809/elo-ladder/internal/storage"
)

var _ storage.Store = (*store)(nil)

// store keeps the players in a single flat file.
type store struct {
	path string
}

// New creates a file-backed Store at path. The file is created on first Save.
func New(path string) storage.Store {
	return &store{path: path}
}

// Save rewrites the whole file through a temporary sibling so a crash never
// leaves a half-written data file behind.
func (s *store) Save(ctx context.Context, players []rating.PlayerRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".players-*.csv")
	if err != nil {
		return fmt.Errorf("failed to open file for writing: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, players); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write players: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write players: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	log.Info("Data saved", "path", s.path, "players", len(players))
	return nil
}

func (s *store) Load(ctx context.Context) ([]rating.PlayerRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("No existing data file found. Starting fresh.", "path", s.path)
			return []rating.PlayerRecord{}, nil
		}
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	players, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	log.Info("Loaded players", "path", s.path, "players", len(players))
	return players, nil
}

func (s *store) Close() error {
	return nil
}
