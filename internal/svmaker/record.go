// Package svmaker applies coordinate-addressed structural variants to a
// single DNA sequence: deletions, insertions, inversions, duplications and
// copyback/snapback rearrangements. Each operation produces a new record
// with a provenance clause appended to its header.
package svmaker

import (
	"fmt"
	"strings"
)

// Record is a single DNA sequence and its FASTA description line.
type Record struct {
	// Header is the description line, without the leading '>'
	Header string

	// Seq is the sequence itself, uppercase over {A,T,C,G,N}
	Seq string
}

// NewRecord builds a validated record. The sequence is uppercased; any
// character outside the DNA alphabet is an error.
func NewRecord(header, seq string) (*Record, error) {
	seq = strings.ToUpper(seq)

	if seq == "" {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidBase)
	}
	if err := checkBases(seq); err != nil {
		return nil, err
	}

	return &Record{Header: header, Seq: seq}, nil
}

// Length returns the number of bases in the record
func (r *Record) Length() int {
	return len(r.Seq)
}

// checkBases errors on the first character outside {A,T,C,G,N}.
func checkBases(seq string) error {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T', 'C', 'G', 'N':
		default:
			return fmt.Errorf("%w %q at position %d: bases must be one of A, T, C, G, N", ErrInvalidBase, seq[i], i+1)
		}
	}
	return nil
}
