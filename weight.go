package bitops

import (
	"math/bits"

	"github.com/hupe1980/bitops/internal/simd"
)

// Weight returns the number of set bits among the first nbits bits of b.
// Padding bits are ignored. The result is in [0, nbits].
func Weight(b Bitmap, nbits int) int {
	if isSmall(nbits) {
		return weightSmall(b, nbits)
	}
	return weight(b, nbits)
}

func weightSmall(b Bitmap, nbits int) int {
	return bits.OnesCount(b[0] & LastWordMask(nbits))
}

// weight counts every full word through the kernel and masks only the
// trailing partial word.
func weight(b Bitmap, nbits int) int {
	if nbits <= 0 {
		return 0
	}
	full := nbits / WordBits
	w := simd.PopcountWords(b[:full])
	if nbits&wordMask != 0 {
		w += bits.OnesCount(b[full] & LastWordMask(nbits))
	}
	return w
}
