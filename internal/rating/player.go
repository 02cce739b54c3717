package rating

import (
	"sync"
	"sync/atomic"
)

var playerSeq atomic.Uint64

// Player holds a competitor's identity, running statistics and current rating.
// All methods are safe for concurrent use.
type Player struct {
	mu sync.Mutex
	// seq gives every player a stable position in the lock order used by Match.
	seq uint64

	name        string
	rating      float64
	gamesPlayed int
	wins        int
	losses      int
	draws       int
}

// NewPlayer creates a player with zeroed statistics. A negative rating is
// clamped to zero.
func NewPlayer(name string, rating float64) *Player {
	return &Player{
		seq:    playerSeq.Add(1),
		name:   name,
		rating: floor(rating),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Rating() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rating
}

func (p *Player) GamesPlayed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gamesPlayed
}

func (p *Player) Wins() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wins
}

func (p *Player) Losses() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.losses
}

func (p *Player) Draws() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draws
}

// Record returns a consistent snapshot of the player.
func (p *Player) Record() PlayerRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PlayerRecord{
		Name:        p.name,
		Rating:      p.rating,
		GamesPlayed: p.gamesPlayed,
		Wins:        p.wins,
		Losses:      p.losses,
		Draws:       p.draws,
	}
}

// UpdateRating replaces the current rating. Ratings never drop below zero.
func (p *Player) UpdateRating(rating float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setRatingLocked(rating)
}

func (p *Player) RecordWin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recordLocked(Win)
}

func (p *Player) RecordLoss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recordLocked(Loss)
}

func (p *Player) RecordDraw() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recordLocked(Draw)
}

func (p *Player) setRatingLocked(rating float64) {
	p.rating = floor(rating)
}

// recordLocked bumps exactly one outcome counter together with gamesPlayed.
func (p *Player) recordLocked(r Result) {
	switch r {
	case Win:
		p.wins++
	case Loss:
		p.losses++
	default:
		p.draws++
	}
	p.gamesPlayed++
}

func floor(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	return rating
}
