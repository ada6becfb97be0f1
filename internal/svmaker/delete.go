package svmaker

// Delete removes the bases between Start and End (1-based, inclusive).
type Delete struct {
	Start int
	End   int
}

// Apply removes the region, shortening the sequence by End - Start + 1.
func (d Delete) Apply(r *Record) (*Record, error) {
	if err := checkRegion(d.Start, d.End, r.Length()); err != nil {
		return nil, err
	}

	seq := r.Seq[:d.Start-1] + r.Seq[d.End:]
	return r.annotate(seq, edit{
		kind:   editDelete,
		start:  d.Start,
		end:    d.End,
		length: d.End - d.Start + 1,
	}), nil
}
