package population

import (
	"math/rand"
	"time"
)

// Rand is the random source consumed by the generators. *rand.Rand satisfies
// it; tests can substitute a deterministic implementation.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded random source. A zero seed falls back to the
// current time, so runs without a configured seed are not reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
