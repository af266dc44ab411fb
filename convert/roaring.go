package convert

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitops"
)

// maxRoaringBits is the size of the uint32 universe roaring can address.
const maxRoaringBits uint64 = 1 << 32

func checkRoaringLength(nbits int) error {
	switch {
	case nbits < 0:
		return bitops.NewErrInvalidLength(nbits, bitops.ErrNegativeLength)
	case uint64(nbits) > maxRoaringBits:
		return bitops.NewErrInvalidLength(nbits, bitops.ErrLengthTooLarge)
	}
	return nil
}

// ToRoaring returns a roaring bitmap holding the set bits of b in [0, nbits).
func ToRoaring(b bitops.Bitmap, nbits int) (*roaring.Bitmap, error) {
	if err := checkRoaringLength(nbits); err != nil {
		return nil, err
	}

	rb := roaring.New()
	for i := bitops.FindFirstBit(b, nbits); i < nbits; {
		// Add whole runs at once; roaring stores them as run containers.
		end := bitops.FindNextZeroBit(b, nbits, i+1)
		if end == i+1 {
			rb.Add(uint32(i))
		} else {
			rb.AddRange(uint64(i), uint64(end))
		}
		i = bitops.FindNextBit(b, nbits, end)
	}
	return rb, nil
}

// FromRoaring returns a new Bitmap of nbits bits holding the values of rb.
func FromRoaring(rb *roaring.Bitmap, nbits int) (bitops.Bitmap, error) {
	if err := checkRoaringLength(nbits); err != nil {
		return nil, err
	}
	b, err := bitops.Alloc(nbits)
	if err != nil {
		return nil, err
	}
	if rb == nil || rb.IsEmpty() {
		return b, nil
	}

	if last := uint64(rb.Maximum()); last >= uint64(nbits) {
		return nil, &bitops.ErrOutOfRange{Index: int(last), NBits: nbits}
	}

	it := rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		b[bitops.WordIndex(i)] |= bitops.BitMask(i)
	}
	return b, nil
}
