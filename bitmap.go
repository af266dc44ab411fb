package bitops

import (
	"context"
	"math"
	"runtime"

	"github.com/hupe1980/bitops/internal/simd"
)

// Bitmap is a fixed-length array of machine words. Bit i lives in word
// i/WordBits at position i%WordBits, least significant first.
//
// A Bitmap carries no length: every operation takes the logical bit count
// explicitly and only touches the first WordsFor(nbits) words. Bits past
// nbits in the final word are padding.
type Bitmap []uint

const (
	// maxAllocBytes is the largest single allocation the Go runtime serves:
	// 1<<48 bytes on 64-bit platforms, 1<<31 on 32-bit ones.
	maxAllocBytes = 1 << (31 + 17*(WordBits/64))

	// maxBits is the largest bit count Alloc accepts.
	maxBits = min(maxAllocBytes*8, math.MaxInt-wordMask)
)

// Alloc returns a zeroed bitmap able to hold nbits bits.
func Alloc(nbits int) (Bitmap, error) {
	ctx := context.Background()

	var (
		b   Bitmap
		err error
	)
	switch {
	case nbits < 0:
		err = &ErrInvalidLength{NBits: nbits, cause: ErrNegativeLength}
	case nbits > maxBits:
		err = &ErrInvalidLength{NBits: nbits, cause: ErrLengthTooLarge}
	default:
		b, err = makeWords(nbits)
	}
	if err != nil {
		logger().LogAlloc(ctx, nbits, err)
		return nil, err
	}

	logger().LogAlloc(ctx, nbits, nil)
	return b, nil
}

// makeWords reports a runtime refusal to size the slice as ErrLengthTooLarge.
func makeWords(nbits int) (b Bitmap, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			b, err = nil, &ErrInvalidLength{NBits: nbits, cause: ErrLengthTooLarge}
		}
	}()
	return make(Bitmap, WordsFor(nbits)), nil
}

// Zero clears the WordsFor(nbits) words backing nbits bits.
func Zero(b Bitmap, nbits int) {
	simd.ZeroWords(b[:WordsFor(nbits)])
}

// isSmall reports whether nbits fits in a single word. Small bitmaps skip
// the word loop entirely.
func isSmall(nbits int) bool {
	return nbits > 0 && nbits <= WordBits
}
