// Package testutil provides testing utilities for bitops.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for random word patterns and naive bit-at-a-time
// reference implementations that serve as oracles for the word-level code.
//
// # Random Patterns
//
//	rng := testutil.NewRNG(seed)
//	words := rng.Words(nbits, 0.1) // ~10% of bits set, padding included
//
// # Reference Oracles
//
//	testutil.CountBits(words, nbits)
//	testutil.NextBit(words, nbits, offset, true)
package testutil
