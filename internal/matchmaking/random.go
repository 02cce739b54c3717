package matchmaking

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random provides random number generation that can be mocked for testing.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// PCGRandom implements Random on a seeded PCG generator.
// It is safe for concurrent use.
type PCGRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a Random seeded with seed. A zero seed uses the current time.
func NewRandom(seed uint64) *PCGRandom {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PCGRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *PCGRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func (r *PCGRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
