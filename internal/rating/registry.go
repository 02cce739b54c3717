package rating

import (
	"fmt"
	"sync"
)

// Registry owns every Player and drives matches between them by name.
//
// The collection lock only guards membership. Rating updates are serialized by
// the per-player locks taken in Match.Process, so matches between disjoint
// pairs run in parallel while matches sharing a player apply in call order.
type Registry struct {
	mu      sync.RWMutex
	players []*Player
	index   map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// AddPlayer registers a new player. Names are matched exactly, case included.
func (r *Registry) AddPlayer(name string, initialRating float64) error {
	if name == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePlayer, name)
	}
	r.appendLocked(NewPlayer(name, initialRating))
	return nil
}

// FindPlayer returns the player registered under name. The returned pointer is
// borrowed from the registry and stays attached to it until Reset or Replace.
func (r *Registry) FindPlayer(name string) (*Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(name)
}

// RecordMatch applies a match between two registered players. Either both
// players are updated or, on any error, neither is touched.
func (r *Registry) RecordMatch(name1, name2 string, result Result, kFactor float64) (Outcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p1, ok := r.findLocked(name1)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, name1)
	}
	p2, ok := r.findLocked(name2)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, name2)
	}

	match, err := NewMatch(p1, p2, result, kFactor)
	if err != nil {
		return Outcome{}, err
	}
	return match.Process(), nil
}

func (r *Registry) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// PlayerNames returns every name in insertion order.
func (r *Registry) PlayerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.players))
	for _, p := range r.players {
		names = append(names, p.Name())
	}
	return names
}

// Players returns a snapshot of every player in insertion order.
func (r *Registry) Players() []PlayerRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]PlayerRecord, 0, len(r.players))
	for _, p := range r.players {
		records = append(records, p.Record())
	}
	return records
}

// Restore adds a player rebuilt from a saved record. The counters are replayed
// through RecordWin, RecordLoss and RecordDraw rather than assigned, so the
// rebuilt GamesPlayed is always the sum of the outcomes.
func (r *Registry) Restore(rec PlayerRecord) error {
	p, err := rebuild(rec)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[rec.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePlayer, rec.Name)
	}
	r.appendLocked(p)
	return nil
}

// Replace swaps the registry contents for the given records. Nothing changes
// unless every record is valid and names are unique.
func (r *Registry) Replace(records []PlayerRecord) error {
	players := make([]*Player, 0, len(records))
	index := make(map[string]int, len(records))
	for _, rec := range records {
		if _, exists := index[rec.Name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, rec.Name)
		}
		p, err := rebuild(rec)
		if err != nil {
			return err
		}
		index[rec.Name] = len(players)
		players = append(players, p)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = players
	r.index = index
	return nil
}

// Reset removes every player.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = nil
	r.index = make(map[string]int)
}

func (r *Registry) findLocked(name string) (*Player, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.players[i], true
}

func (r *Registry) appendLocked(p *Player) {
	r.index[p.Name()] = len(r.players)
	r.players = append(r.players, p)
}

func rebuild(rec PlayerRecord) (*Player, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	p := NewPlayer(rec.Name, rec.Rating)
	for i := 0; i < rec.Wins; i++ {
		p.RecordWin()
	}
	for i := 0; i < rec.Losses; i++ {
		p.RecordLoss()
	}
	for i := 0; i < rec.Draws; i++ {
		p.RecordDraw()
	}
	return p, nil
}
