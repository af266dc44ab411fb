package testutil

import (
	"math/bits"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Word returns a pseudo-random machine word.
func (r *RNG) Word() uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint(r.rand.Uint64())
}

// FillWords fills dst with uniformly random words.
// Locks only once per call (preferred over calling Word in a loop).
func (r *RNG) FillWords(dst []uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = uint(r.rand.Uint64())
	}
}

// Words returns (nbits+UintSize-1)/UintSize words where each bit is set
// independently with probability density. Padding bits in the last word are
// random as well, so callers exercise masking.
func (r *RNG) Words(nbits int, density float64) []uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := (nbits + bits.UintSize - 1) / bits.UintSize
	words := make([]uint, n)
	for i := range words {
		for j := 0; j < bits.UintSize; j++ {
			if r.rand.Float64() < density {
				words[i] |= 1 << j
			}
		}
	}
	return words
}

// Test reports whether bit i of words is set, one bit at a time.
func Test(words []uint, i int) bool {
	return words[i/bits.UintSize]>>(i%bits.UintSize)&1 != 0
}

// Set sets bit i of words.
func Set(words []uint, i int) {
	words[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

// CountBits counts set bits in [0, nbits) by testing each bit.
func CountBits(words []uint, nbits int) int {
	n := 0
	for i := 0; i < nbits; i++ {
		if Test(words, i) {
			n++
		}
	}
	return n
}

// NextBit returns the first index in [offset, nbits) whose bit equals want,
// or nbits if there is none. It tests each bit in turn.
func NextBit(words []uint, nbits, offset int, want bool) int {
	for i := max(offset, 0); i < nbits; i++ {
		if Test(words, i) == want {
			return i
		}
	}
	return max(nbits, 0)
}

// SetBits returns the indices of set bits in [0, nbits), ascending.
func SetBits(words []uint, nbits int) []int {
	var out []int
	for i := 0; i < nbits; i++ {
		if Test(words, i) {
			out = append(out, i)
		}
	}
	return out
}
