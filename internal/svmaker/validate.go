package svmaker

import "fmt"

// Coordinates are 1-based and inclusive throughout. Every executor calls
// these before touching bases, so a failed operation never half-applies.

// checkRegion validates [start, end] against a sequence of length n.
func checkRegion(start, end, n int) error {
	if start < 1 {
		return fmt.Errorf("%w: start position %d is before the sequence (positions are 1-based)", ErrOutOfBoundsRegion, start)
	}
	if start > end {
		return fmt.Errorf("%w: start position %d is greater than end position %d", ErrInvertedRange, start, end)
	}
	if end > n {
		return fmt.Errorf("%w: end position %d is beyond sequence length %d", ErrOutOfBoundsRegion, end, n)
	}
	return nil
}

// checkInsertPos validates an insertion position. n+1 is allowed: inserting
// there appends to the sequence.
func checkInsertPos(pos, n int) error {
	if pos < 1 || pos > n+1 {
		return fmt.Errorf("%w: insert position %d is outside 1-%d", ErrOutOfBoundsPosition, pos, n+1)
	}
	return nil
}

// checkPos validates a single position within the sequence.
func checkPos(name string, pos, n int) error {
	if pos < 1 {
		return fmt.Errorf("%w: %s %d is before the sequence (positions are 1-based)", ErrOutOfBoundsPosition, name, pos)
	}
	if pos > n {
		return fmt.Errorf("%w: %s %d is beyond sequence length %d", ErrOutOfBoundsPosition, name, pos, n)
	}
	return nil
}
