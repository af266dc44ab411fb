package bitops

import "math/bits"

// WordBits is the number of bits per word: 32 or 64, matching uint.
const WordBits = bits.UintSize

const (
	allOnes  = ^uint(0)
	wordMask = WordBits - 1
)

// WordsFor returns the number of words needed to hold nbits bits.
// Non-positive nbits needs no words.
func WordsFor(nbits int) int {
	if nbits <= 0 {
		return 0
	}
	return (nbits + wordMask) / WordBits
}

// WordIndex returns the index of the word holding bit.
func WordIndex(bit int) int {
	return bit / WordBits
}

// BitMask returns the mask selecting bit inside its word.
func BitMask(bit int) uint {
	return 1 << (uint(bit) & wordMask)
}

// FirstWordMask returns a word with every bit at or above start mod WordBits
// set. It hides the bits before start in the word that holds start.
func FirstWordMask(start int) uint {
	return allOnes << (uint(start) & wordMask)
}

// LastWordMask returns a word with the low nbits mod WordBits bits set, or
// all bits when nbits is a multiple of WordBits. It hides padding bits in the
// final word of an nbits-long bitmap.
func LastWordMask(nbits int) uint {
	if r := uint(nbits) & wordMask; r != 0 {
		return 1<<r - 1
	}
	return allOnes
}
