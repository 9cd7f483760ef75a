package board

import (
	"math/rand"
	"time"
)

// RandSource supplies integers for board generation
type RandSource interface {
	// NextInt returns a uniform integer in [min, max]
	NextInt(min, max int) int
}

// Rand is the default RandSource backed by math/rand
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a random source; seed 0 seeds from the clock
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) NextInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// SequenceSource replays a fixed list of values, cycling when exhausted
type SequenceSource struct {
	values []int
	pos    int
}

// NewSequenceSource creates a deterministic source for tests and replays
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) NextInt(min, max int) int {
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
