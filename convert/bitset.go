package convert

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitops"
)

// ToBitSet copies the first nbits bits of b into a new bitset.BitSet of
// length nbits.
func ToBitSet(b bitops.Bitmap, nbits int) *bitset.BitSet {
	nbits = max(nbits, 0)
	bs := bitset.New(uint(nbits))
	for i := bitops.FindFirstBit(b, nbits); i < nbits; i = bitops.FindNextBit(b, nbits, i+1) {
		bs.Set(uint(i))
	}
	return bs
}

// FromBitSet returns a new Bitmap of nbits bits holding the set bits of bs.
func FromBitSet(bs *bitset.BitSet, nbits int) (bitops.Bitmap, error) {
	b, err := bitops.Alloc(nbits)
	if err != nil {
		return nil, err
	}
	if bs == nil {
		return b, nil
	}

	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if i >= uint(nbits) {
			return nil, &bitops.ErrOutOfRange{Index: int(i), NBits: nbits}
		}
		b[bitops.WordIndex(int(i))] |= bitops.BitMask(int(i))
	}
	return b, nil
}
