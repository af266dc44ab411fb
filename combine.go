package bitops

import "github.com/hupe1980/bitops/internal/simd"

// Both combine operations clear the padding bits of the destination's final
// word, on the single-word path and the word-loop path alike. The result is
// therefore defined by the in-range bits of the sources only.

// Or stores src1 | src2 into dst for the first nbits bits. dst may alias
// either source.
func Or(dst, src1, src2 Bitmap, nbits int) {
	if isSmall(nbits) {
		orSmall(dst, src1, src2, nbits)
		return
	}
	or(dst, src1, src2, nbits)
}

func orSmall(dst, src1, src2 Bitmap, nbits int) {
	dst[0] = (src1[0] | src2[0]) & LastWordMask(nbits)
}

func or(dst, src1, src2 Bitmap, nbits int) {
	n := WordsFor(nbits)
	if n == 0 {
		return
	}
	simd.OrWords(dst[:n], src1, src2)
	dst[n-1] &= LastWordMask(nbits)
}

// And stores src1 & src2 into dst for the first nbits bits and reports
// whether any of those bits is set. dst may alias either source.
func And(dst, src1, src2 Bitmap, nbits int) bool {
	if isSmall(nbits) {
		return andSmall(dst, src1, src2, nbits)
	}
	return and(dst, src1, src2, nbits)
}

func andSmall(dst, src1, src2 Bitmap, nbits int) bool {
	dst[0] = src1[0] & src2[0] & LastWordMask(nbits)
	return dst[0] != 0
}

func and(dst, src1, src2 Bitmap, nbits int) bool {
	n := WordsFor(nbits)
	if n == 0 {
		return false
	}
	last := n - 1
	nonzero := simd.AndWords(dst[:last], src1, src2)
	dst[last] = src1[last] & src2[last] & LastWordMask(nbits)
	return nonzero || dst[last] != 0
}
