package rating

import (
	"fmt"
	"math"
)

// ExpectedScore returns the probability-like expectation, in (0, 1), that a
// player rated self scores against a player rated opponent.
func ExpectedScore(self, opponent float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (opponent-self)/400.0))
}

// Match binds two players to a result for a single rating computation.
// The players are borrowed; Match never copies or owns them.
type Match struct {
	player1 *Player
	player2 *Player
	result  Result
	kFactor float64
}

// NewMatch validates its inputs and returns a Match ready to be processed.
func NewMatch(p1, p2 *Player, result Result, kFactor float64) (*Match, error) {
	if p1 == nil || p2 == nil {
		return nil, fmt.Errorf("%w: nil player", ErrPlayerNotFound)
	}
	if p1 == p2 {
		return nil, fmt.Errorf("%w: %q", ErrSelfMatch, p1.Name())
	}
	if !result.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResult, int(result))
	}
	if math.IsNaN(kFactor) || math.IsInf(kFactor, 0) || kFactor <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKFactor, kFactor)
	}
	return &Match{
		player1: p1,
		player2: p2,
		result:  result,
		kFactor: kFactor,
	}, nil
}

// Process applies the match to both players: it records the win, loss or draw
// on each side and moves both ratings by K * (actual - expected), computed
// from the ratings held before the match.
//
// Both players stay locked for the whole read-compute-write sequence, so any
// other match touching either player observes it either fully applied or not
// at all. Process is not idempotent: calling it twice applies the match twice.
func (m *Match) Process() Outcome {
	first, second := m.player1, m.player2
	if second.seq < first.seq {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	rating1 := m.player1.rating
	rating2 := m.player2.rating

	expected1 := ExpectedScore(rating1, rating2)
	expected2 := ExpectedScore(rating2, rating1)

	actual1, actual2 := m.result.Scores()
	switch m.result {
	case Win:
		m.player1.recordLocked(Win)
		m.player2.recordLocked(Loss)
	case Loss:
		m.player1.recordLocked(Loss)
		m.player2.recordLocked(Win)
	case Draw:
		m.player1.recordLocked(Draw)
		m.player2.recordLocked(Draw)
	}

	m.player1.setRatingLocked(rating1 + m.kFactor*(actual1-expected1))
	m.player2.setRatingLocked(rating2 + m.kFactor*(actual2-expected2))

	return Outcome{
		Player1:       m.player1.name,
		Player2:       m.player2.name,
		Result:        m.result,
		KFactor:       m.kFactor,
		Player1Before: rating1,
		Player2Before: rating2,
		Player1After:  m.player1.rating,
		Player2After:  m.player2.rating,
	}
}
