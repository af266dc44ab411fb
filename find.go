package bitops

import "math/bits"

// FindNextBit returns the index of the first set bit at or after offset, or
// size if there is none in [offset, size).
func FindNextBit(b Bitmap, size, offset int) int {
	return findNextBit(b, size, offset, 0)
}

// FindNextZeroBit returns the index of the first clear bit at or after
// offset, or size if there is none in [offset, size).
func FindNextZeroBit(b Bitmap, size, offset int) int {
	return findNextBit(b, size, offset, allOnes)
}

// FindFirstBit returns the index of the first set bit, or size if b has none.
func FindFirstBit(b Bitmap, size int) int {
	return FindNextBit(b, size, 0)
}

// FindFirstZeroBit returns the index of the first clear bit, or size if
// every bit is set.
func FindFirstZeroBit(b Bitmap, size int) int {
	return FindNextZeroBit(b, size, 0)
}

// findNextBit scans for the next set bit of b ^ invert. An all-ones invert
// turns the search for a set bit into a search for a clear one.
func findNextBit(b Bitmap, nbits, start int, invert uint) int {
	if nbits <= 0 || start >= nbits {
		return max(nbits, 0)
	}
	start = max(start, 0)

	tmp := (b[start/WordBits] ^ invert) & FirstWordMask(start)
	start -= start & wordMask

	for tmp == 0 {
		start += WordBits
		if start >= nbits {
			return nbits
		}
		tmp = b[start/WordBits] ^ invert
	}

	// A hit inside the padding bits is clamped to nbits.
	return min(start+bits.TrailingZeros(tmp), nbits)
}
