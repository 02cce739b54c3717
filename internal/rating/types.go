package rating

import "fmt"

const (
	// DefaultRating is the rating a new player starts with.
	DefaultRating = 1200.0
	// DefaultKFactor is the standard K-factor applied per match.
	DefaultKFactor = 32.0
)

// Result is the outcome of a match from player one's perspective.
type Result int

const (
	Loss Result = -1
	Draw Result = 0
	Win  Result = 1
)

// ParseResult converts the numeric 1/0/-1 encoding into a Result.
func ParseResult(code int) (Result, error) {
	r := Result(code)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d (want 1, 0 or -1)", ErrInvalidResult, code)
	}
	return r, nil
}

// Valid reports whether r is one of Win, Draw or Loss.
func (r Result) Valid() bool {
	return r == Win || r == Draw || r == Loss
}

// Scores returns the actual scores of player one and player two.
func (r Result) Scores() (float64, float64) {
	switch r {
	case Win:
		return 1.0, 0.0
	case Loss:
		return 0.0, 1.0
	default:
		return 0.5, 0.5
	}
}

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// PlayerRecord is a point-in-time copy of every field of a Player.
// It is what the persistence layer reads and writes.
type PlayerRecord struct {
	Name        string  `json:"name" msgpack:"name"`
	Rating      float64 `json:"rating" msgpack:"rating"`
	GamesPlayed int     `json:"games_played" msgpack:"games_played"`
	Wins        int     `json:"wins" msgpack:"wins"`
	Losses      int     `json:"losses" msgpack:"losses"`
	Draws       int     `json:"draws" msgpack:"draws"`
}

// Validate checks the record can be replayed into a Player.
func (r PlayerRecord) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyName)
	}
	if r.Wins < 0 || r.Losses < 0 || r.Draws < 0 {
		return fmt.Errorf("%w: negative counter for %q", ErrInvalidRecord, r.Name)
	}
	return nil
}

// Outcome describes the rating change applied by one match.
type Outcome struct {
	Player1       string  `json:"player1" msgpack:"player1"`
	Player2       string  `json:"player2" msgpack:"player2"`
	Result        Result  `json:"result" msgpack:"result"`
	KFactor       float64 `json:"k_factor" msgpack:"k_factor"`
	Player1Before float64 `json:"player1_before" msgpack:"player1_before"`
	Player2Before float64 `json:"player2_before" msgpack:"player2_before"`
	Player1After  float64 `json:"player1_after" msgpack:"player1_after"`
	Player2After  float64 `json:"player2_after" msgpack:"player2_after"`
}

func (o Outcome) Delta1() float64 { return o.Player1After - o.Player1Before }
func (o Outcome) Delta2() float64 { return o.Player2After - o.Player2Before }
