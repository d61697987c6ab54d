package slots

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"sync"
)

// RandomSource yields uniform values in [0,1)
type RandomSource interface {
	Float64() float64
}

// lockedSource makes a math/rand generator safe for concurrent engines
type lockedSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// NewSeededSource returns a deterministic source for reproducible runs
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSource returns a source seeded from the operating system
func NewSource() RandomSource {
	return NewSeededSource(NewSeed())
}

// NewSeed reads a seed from crypto/rand, falling back to the runtime generator.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return mrand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

// SequenceSource replays fixed values in order, wrapping around. Used for forced draws.
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequenceSource creates a SequenceSource; values must be in [0,1)
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
