package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a mutex-guarded pseudo-random generator.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// NewFromTime returns a Source seeded with the current time.
func NewFromTime() *Source {
	return New(time.Now().UnixNano())
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// Float64 returns a value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Int63 returns a non-negative 63-bit value.
func (s *Source) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Int63()
}

// Read fills p with pseudo-random bytes. It never fails, so a Source can
// feed anything that wants an io.Reader of entropy.
func (s *Source) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Read(p)
}
