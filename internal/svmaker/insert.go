package svmaker

import (
	"fmt"
	"strings"
)

// Insert splices Seq into the record immediately before Pos (1-based).
// Pos may be one past the last base, which appends.
type Insert struct {
	Pos int
	Seq string
}

// Apply splices the payload in, lengthening the sequence by len(Seq).
func (in Insert) Apply(r *Record) (*Record, error) {
	if err := checkInsertPos(in.Pos, r.Length()); err != nil {
		return nil, err
	}

	payload := strings.ToUpper(in.Seq)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty insertion sequence", ErrInvalidArgument)
	}
	if err := checkBases(payload); err != nil {
		return nil, err
	}

	i := in.Pos - 1
	seq := r.Seq[:i] + payload + r.Seq[i:]
	return r.annotate(seq, edit{
		kind:   editInsert,
		pos:    in.Pos,
		length: len(payload),
	}), nil
}
