package svmaker

// Duplicate copies the bases between Start and End (1-based, inclusive) and
// inserts the copy immediately before Pos. With Tandem set, Pos is ignored
// and the copy lands directly after the source region (Pos = End + 1),
// producing a direct tandem repeat.
type Duplicate struct {
	Start  int
	End    int
	Pos    int
	Tandem bool
}

// Apply copies the region, lengthening the sequence by End - Start + 1.
// The target may fall anywhere a plain insertion could, including inside
// the source region itself.
func (d Duplicate) Apply(r *Record) (*Record, error) {
	if err := checkRegion(d.Start, d.End, r.Length()); err != nil {
		return nil, err
	}

	pos := d.Pos
	kind := editDuplicate
	if d.Tandem {
		pos = d.End + 1
		kind = editTandem
	}
	if err := checkInsertPos(pos, r.Length()); err != nil {
		return nil, err
	}

	segment := r.Seq[d.Start-1 : d.End]
	i := pos - 1
	seq := r.Seq[:i] + segment + r.Seq[i:]
	return r.annotate(seq, edit{
		kind:   kind,
		start:  d.Start,
		end:    d.End,
		pos:    pos,
		length: len(segment),
	}), nil
}
