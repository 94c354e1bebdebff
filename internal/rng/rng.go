package rng

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_rand.go github.com/hueylin/groupballot/internal/rng Rand

// Rand supplies the randomness for ballot draws and name selection.
// Draws must stay unbiased, so callers use Intn over the live candidate
// set rather than scaling a float.
type Rand interface {
	Intn(n int) int
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Source implements Rand backed by math/rand
type Source struct {
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Source{
		random: random,
	}
}

// Intn returns a uniform random int in [0, n)
func (s *Source) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return s.random.Intn(n)
}
