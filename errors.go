package bitops

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength is returned when a bit count is negative.
	ErrNegativeLength = errors.New("bit count must not be negative")

	// ErrLengthTooLarge is returned when a bit count exceeds what the target
	// representation can address.
	ErrLengthTooLarge = errors.New("bit count too large")
)

// ErrInvalidLength indicates a bit count that cannot back a bitmap.
//
// The underlying reason can be accessed via errors.Unwrap and matched with
// errors.Is against ErrNegativeLength or ErrLengthTooLarge.
type ErrInvalidLength struct {
	NBits int
	cause error
}

// NewErrInvalidLength returns an ErrInvalidLength for nbits caused by cause.
func NewErrInvalidLength(nbits int, cause error) *ErrInvalidLength {
	return &ErrInvalidLength{NBits: nbits, cause: cause}
}

func (e *ErrInvalidLength) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("invalid bit count: %d", e.NBits)
	}
	return fmt.Sprintf("invalid bit count %d: %v", e.NBits, e.cause)
}

func (e *ErrInvalidLength) Unwrap() error { return e.cause }

// ErrOutOfRange indicates a set bit at or beyond the logical bit count.
type ErrOutOfRange struct {
	Index int
	NBits int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("bit %d out of range [0, %d)", e.Index, e.NBits)
}
