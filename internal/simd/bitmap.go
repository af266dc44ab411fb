package simd

import "math/bits"

// ==============================================================================
// Bitmap Word Operations
// ==============================================================================
//
// These operations back the bitops package. They work on []uint, one machine
// word per element. Each output word depends only on the same-indexed input
// words, so dst may alias either source.

// Kernel function pointers. Generic implementations are the default;
// useKernel swaps them once during init.
var (
	kernelOrWords       = orWordsGeneric
	kernelAndWords      = andWordsGeneric
	kernelPopcountWords = popcountWordsGeneric
)

func useKernel(k Kernel) {
	activeKernel = k
	switch k {
	case Unrolled:
		kernelOrWords = orWordsUnrolled
		kernelAndWords = andWordsUnrolled
		kernelPopcountWords = popcountWordsUnrolled
	default:
		kernelOrWords = orWordsGeneric
		kernelAndWords = andWordsGeneric
		kernelPopcountWords = popcountWordsGeneric
	}
}

// OrWords performs dst[i] = a[i] | b[i] for every word of dst.
// a and b must hold at least len(dst) words.
func OrWords(dst, a, b []uint) {
	kernelOrWords(dst, a, b)
}

// AndWords performs dst[i] = a[i] & b[i] for every word of dst and reports
// whether any resulting word is nonzero.
// a and b must hold at least len(dst) words.
func AndWords(dst, a, b []uint) bool {
	return kernelAndWords(dst, a, b)
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint) int {
	return kernelPopcountWords(words)
}

// ZeroWords clears every word.
func ZeroWords(words []uint) {
	clear(words)
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func orWordsGeneric(dst, a, b []uint) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func andWordsGeneric(dst, a, b []uint) bool {
	a = a[:len(dst)]
	b = b[:len(dst)]
	var acc uint
	for i := range dst {
		dst[i] = a[i] & b[i]
		acc |= dst[i]
	}
	return acc != 0
}

func popcountWordsGeneric(words []uint) int {
	count := 0
	for _, w := range words {
		count += bits.OnesCount(w)
	}
	return count
}

// ==============================================================================
// Unrolled implementations
// ==============================================================================

func orWordsUnrolled(dst, a, b []uint) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = a[i] | b[i]
		dst[i+1] = a[i+1] | b[i+1]
		dst[i+2] = a[i+2] | b[i+2]
		dst[i+3] = a[i+3] | b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] | b[i]
	}
}

func andWordsUnrolled(dst, a, b []uint) bool {
	a = a[:len(dst)]
	b = b[:len(dst)]
	var acc uint
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		w0 := a[i] & b[i]
		w1 := a[i+1] & b[i+1]
		w2 := a[i+2] & b[i+2]
		w3 := a[i+3] & b[i+3]
		dst[i], dst[i+1], dst[i+2], dst[i+3] = w0, w1, w2, w3
		acc |= w0 | w1 | w2 | w3
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] & b[i]
		acc |= dst[i]
	}
	return acc != 0
}

func popcountWordsUnrolled(words []uint) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount(words[i])
		count += bits.OnesCount(words[i+1])
		count += bits.OnesCount(words[i+2])
		count += bits.OnesCount(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount(words[i])
	}
	return count
}
