package entropy

import (
	"math/rand/v2"
	"sync"
)

// API is the interface that anything depending on randomness should use.
type API interface {
	// IntN returns a uniformly distributed int in [0, n), it panics if n <= 0.
	IntN(n int) int
}

// StandardRandom is the standard implementation of API, it is seeded from the runtime's
// entropy source.
type StandardRandom struct{}

// NewStandardRandom is the constructor of StandardRandom.
func NewStandardRandom() StandardRandom {
	return StandardRandom{}
}

func (StandardRandom) IntN(n int) int {
	return rand.IntN(n)
}

// SeededRandom is a reproducible implementation of API, two instances created with the
// same seed yield the same sequence. It is safe for concurrent use.
type SeededRandom struct {
	mutex *sync.Mutex
	rng   *rand.Rand
}

// NewSeededRandom is the constructor of SeededRandom.
func NewSeededRandom(seed uint64) SeededRandom {
	return SeededRandom{
		mutex: &sync.Mutex{},
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s SeededRandom) IntN(n int) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.rng.IntN(n)
}
