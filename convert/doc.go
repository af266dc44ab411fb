// Package convert moves bits between bitops.Bitmap and the ecosystem bitmap
// types: bits-and-blooms/bitset and RoaringBitmap/roaring/v2.
//
// Conversions walk set bits with bitops.FindNextBit, so padding bits of a
// source Bitmap never leak into the result. In the other direction a set bit
// at or past nbits is reported as *bitops.ErrOutOfRange rather than dropped.
//
//	rb, err := convert.ToRoaring(b, nbits)   // persist or ship with roaring
//	b, err = convert.FromRoaring(rb, nbits)  // back to a word array
package convert
