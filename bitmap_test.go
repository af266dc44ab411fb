package bitops

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitops/testutil"
)

func TestAlloc(t *testing.T) {
	for _, nbits := range []int{0, 1, WordBits - 1, WordBits, WordBits + 1, 1000} {
		b, err := Alloc(nbits)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Len(t, b, WordsFor(nbits))
		for i, w := range b {
			assert.Zero(t, w, "word %d", i)
		}
	}
}

func TestAlloc_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		nbits int
		cause error
	}{
		{"negative", -1, ErrNegativeLength},
		{"too large", maxBits + 1, ErrLengthTooLarge},
		{"max int", math.MaxInt, ErrLengthTooLarge},
	}
	if WordBits == 64 {
		// Word count fits an int, byte count exceeds the allocation limit.
		tests = append(tests, struct {
			name  string
			nbits int
			cause error
		}{"word count overflow bound", math.MaxInt - wordMask, ErrLengthTooLarge})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Alloc(tt.nbits)
			require.Error(t, err)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, tt.cause)

			var il *ErrInvalidLength
			require.True(t, errors.As(err, &il))
			assert.Equal(t, tt.nbits, il.NBits)
		})
	}
}

func TestMakeWords_RuntimeRefusal(t *testing.T) {
	if WordBits < 64 {
		t.Skip("the allocation limit is reachable on 32-bit platforms")
	}

	// Past the runtime's allocation limit make panics before touching memory.
	var (
		b   Bitmap
		err error
	)
	require.NotPanics(t, func() {
		b, err = makeWords(math.MaxInt - wordMask)
	})
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrLengthTooLarge)

	var il *ErrInvalidLength
	require.ErrorAs(t, err, &il)
	assert.Equal(t, math.MaxInt-wordMask, il.NBits)
}

func TestZero(t *testing.T) {
	rng := testutil.NewRNG(4711)
	const nbits = 3*WordBits + 7

	b := Bitmap(rng.Words(nbits+WordBits, 0.5))
	guard := b[len(b)-1]

	Zero(b, nbits)
	assert.Equal(t, 0, Weight(b, nbits))
	for i := 0; i < WordsFor(nbits); i++ {
		assert.Zero(t, b[i])
	}
	assert.Equal(t, guard, b[len(b)-1], "Zero must not touch words past WordsFor(nbits)")
}

func TestZero_ThenOrSingleBit(t *testing.T) {
	const nbits = 2*WordBits + 9

	b := Bitmap(testutil.NewRNG(1).Words(nbits, 0.7))
	Zero(b, nbits)
	require.Equal(t, 0, Weight(b, nbits))

	single, err := Alloc(nbits)
	require.NoError(t, err)
	testutil.Set(single, WordBits+4)

	Or(b, b, single, nbits)
	assert.Equal(t, 1, Weight(b, nbits))
	assert.Equal(t, WordBits+4, FindFirstBit(b, nbits))
}

func TestDeclaredBitmap(t *testing.T) {
	var storage [2]uint
	b := Bitmap(storage[:])
	b[1] = 1

	assert.Equal(t, WordBits, FindFirstBit(b, 2*WordBits))
	assert.Equal(t, uint(1), storage[1])
}
