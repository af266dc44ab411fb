// Package bitops provides fixed-width bitmaps stored as slices of machine words.
//
// A Bitmap is a plain []uint. It carries no length: every operation takes the
// logical bit count nbits and touches only the first WordsFor(nbits) words.
// Bit i lives in word i/WordBits at position i%WordBits, least significant first.
//
// # Quick Start
//
//	b, err := bitops.Alloc(1000)
//	if err != nil {
//	    return err
//	}
//	b[bitops.WordIndex(42)] |= bitops.BitMask(42)
//
//	n := bitops.Weight(b, 1000)                // 1
//	i := bitops.FindFirstBit(b, 1000)          // 42
//	j := bitops.FindNextBit(b, 1000, i+1)      // 1000: not found
//
// A fixed-size bitmap can live on the stack:
//
//	var storage [4]uint // 4*WordBits bits
//	b := bitops.Bitmap(storage[:])
//
// # Operations
//
//   - Alloc, Zero: allocation and clearing
//   - Weight: population count of [0, nbits)
//   - Or, And: word-wise combine into a destination that may alias a source
//   - FindNextBit, FindNextZeroBit, FindFirstBit, FindFirstZeroBit: scans
//
// Scans return nbits when nothing matches.
//
// # Padding
//
// Bits past nbits in the final word are padding. Weight and the scans ignore
// them. Or and And clear them in the destination, so And reports true only
// when an in-range bit survives.
//
// # Dispatch
//
// Bitmaps of at most one word take a single-word path. Longer bitmaps run
// through word kernels whose family is chosen from CPU features at init; set
// BITOPS_KERNEL=generic to force the plain loops.
//
// The package is not safe for concurrent mutation of the same bitmap.
package bitops
