package service

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source used for sampling and shuffling.
// *rand.Rand satisfies it; tests can pass a seeded source or a stub.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a time-seeded random source.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// LockedRand serializes access to a Rand shared between goroutines.
type LockedRand struct {
	mu  sync.Mutex
	rng Rand
}

func NewLockedRand(rng Rand) *LockedRand {
	if l, ok := rng.(*LockedRand); ok {
		return l
	}
	return &LockedRand{rng: rng}
}

func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

// Shuffle permutes items in place using Fisher-Yates.
func Shuffle[T any](rng Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffled returns a shuffled copy of items and leaves the input untouched.
func Shuffled[T any](rng Rand, items []T) []T {
	out := append([]T(nil), items...)
	Shuffle(rng, out)
	return out
}
