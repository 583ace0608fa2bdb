// Package entropy supplies the randomness for every stochastic roll in the
// simulation. Core logic never touches math/rand directly — it takes a Source,
// so tests can inject a seeded stream and replay any life exactly.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"sync"
)

// Source produces uniform random floats in [0, 1).
type Source interface {
	Float() float64
}

// Seeded is a deterministic Source backed by a seeded PRNG.
// Safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeeded creates a deterministic Source from a seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mathrand.New(mathrand.NewSource(seed))}
}

// Float returns the next float64 in [0, 1).
func (s *Seeded) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Crypto is a Source backed by crypto/rand. Used when no seed is configured.
type Crypto struct{}

// Float returns a random float64 in [0, 1).
func (Crypto) Float() float64 {
	return cryptoRandFloat()
}

func cryptoRandFloat() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Should never happen; 0.5 is a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// Between returns a uniform integer in [lo, hi] inclusive.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(src.Float()*float64(hi-lo+1))
}

// BetweenF returns a uniform float64 in [lo, hi).
func BetweenF(src Source, lo, hi float64) float64 {
	return lo + src.Float()*(hi-lo)
}

// Chance rolls once against probability p in [0, 1].
func Chance(src Source, p float64) bool {
	return src.Float() < p
}

// Pick returns a uniformly chosen element of items. Panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[Between(src, 0, len(items)-1)]
}
