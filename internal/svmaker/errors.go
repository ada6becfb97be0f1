package svmaker

import "errors"

// Every validation failure wraps one of these so callers can branch on the
// reason with errors.Is. The wrapping message carries the offending
// coordinates.
var (
	// ErrOutOfBoundsPosition is for a single position outside the sequence
	ErrOutOfBoundsPosition = errors.New("position out of bounds")

	// ErrOutOfBoundsRegion is for a [start, end] region outside the sequence
	ErrOutOfBoundsRegion = errors.New("region out of bounds")

	// ErrInvertedRange is for regions whose start is after their end
	ErrInvertedRange = errors.New("inverted range")

	// ErrInvalidBase is for characters outside the {A,T,C,G,N} alphabet
	ErrInvalidBase = errors.New("invalid base")

	// ErrInvalidArgument is for malformed operation arguments, like a
	// genome end other than 5/3 or a backstart at or past the breakpoint
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMultiSequence is for FASTA input holding more than one record
	ErrMultiSequence = errors.New("multiple sequences in input")
)
