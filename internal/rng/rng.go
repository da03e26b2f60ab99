// Package rng defines the random source every stochastic operation takes as a
// parameter, so callers can substitute a seeded or scripted source in tests.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source produces uniform random values
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Source seeded with seed. It is safe for concurrent use.
func New(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness, not security critical
}

// NewTimeSeeded returns a Source seeded from the wall clock
func NewTimeSeeded() Source {
	return New(time.Now().UnixNano())
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// Uniform returns a value in [lo, hi)
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Chance rolls a percent chance (0-100). Values outside the range are clamped.
func Chance(src Source, percent float64) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return src.Float64()*100 < percent
}
