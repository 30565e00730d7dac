package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// NewRand returns a PCG-backed RNG. The same seed always yields the same
// sequence of shuffles.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// shuffle is a Fisher-Yates shuffle driven by rng, shaped like
// rand.Shuffle so it can be handed to GameState.ShuffleZone.
func shuffle(rng RNG) func(n int, swap func(i, j int)) {
	return func(n int, swap func(i, j int)) {
		for i := n - 1; i > 0; i-- {
			j := rng.IntN(i + 1)
			swap(i, j)
		}
	}
}
