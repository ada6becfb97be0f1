package svmaker

// Invert reverses the bases between Start and End (1-based, inclusive) in
// place. With Complement set each base is also swapped for its Watson-Crick
// partner, i.e. the region is replaced by its reverse complement.
type Invert struct {
	Start      int
	End        int
	Complement bool
}

// Apply flips the region; sequence length is unchanged.
func (v Invert) Apply(r *Record) (*Record, error) {
	if err := checkRegion(v.Start, v.End, r.Length()); err != nil {
		return nil, err
	}

	region := r.Seq[v.Start-1 : v.End]

	flipped := reverse(region)
	kind := editInvert
	if v.Complement {
		flipped = revComp(region)
		kind = editRevComp
	}

	seq := r.Seq[:v.Start-1] + flipped + r.Seq[v.End:]
	return r.annotate(seq, edit{
		kind:   kind,
		start:  v.Start,
		end:    v.End,
		length: len(region),
	}), nil
}
