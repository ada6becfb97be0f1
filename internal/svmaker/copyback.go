package svmaker

import "fmt"

// GenomeEnd selects which end of the genome a copyback rebuilds from.
type GenomeEnd int

const (
	FivePrime  GenomeEnd = 5
	ThreePrime GenomeEnd = 3
)

// ParseGenomeEnd maps the CLI token "5" or "3" to a GenomeEnd.
func ParseGenomeEnd(tok string) (GenomeEnd, error) {
	switch tok {
	case "5":
		return FivePrime, nil
	case "3":
		return ThreePrime, nil
	}
	return 0, fmt.Errorf("%w: genome end must be 5 or 3, not %q", ErrInvalidArgument, tok)
}

// Copyback models a copyback defective genome: the sequence is kept up to
// Breakpoint and followed by the reverse complement of its own first
// Backstart bases, so the product can fold back on itself into a hairpin.
//
// For ThreePrime the whole genome is first replaced by its reverse
// complement, and Breakpoint/Backstart count from the 5' start of that
// flipped strand. Snapback is the degenerate case Backstart = Breakpoint:
// the hairpin arm spans the entire retained head.
type Copyback struct {
	End        GenomeEnd
	Breakpoint int
	Backstart  int
	Snapback   bool
}

// Apply builds the copyback product. Output length is Breakpoint + Backstart.
func (c Copyback) Apply(r *Record) (*Record, error) {
	if c.End != FivePrime && c.End != ThreePrime {
		return nil, fmt.Errorf("%w: genome end must be 5 or 3, not %d", ErrInvalidArgument, int(c.End))
	}

	backstart := c.Backstart
	if c.Snapback {
		backstart = c.Breakpoint
	}

	n := r.Length()
	if err := checkPos("breakpoint", c.Breakpoint, n); err != nil {
		return nil, err
	}
	if err := checkPos("backstart", backstart, n); err != nil {
		return nil, err
	}
	if !c.Snapback && backstart >= c.Breakpoint {
		return nil, fmt.Errorf("%w: backstart %d must be less than breakpoint %d", ErrInvalidArgument, backstart, c.Breakpoint)
	}

	// 3' copybacks are expressed against the reverse complement of the
	// whole genome. The frame flip happens up front so the hairpin
	// arithmetic below is identical for both ends.
	working := r.Seq
	if c.End == ThreePrime {
		working = revComp(working)
	}

	seq := working[:c.Breakpoint] + revComp(working[:backstart])

	kind := editCopyback
	if c.Snapback {
		kind = editSnapback
	}
	return r.annotate(seq, edit{
		kind:       kind,
		gend:       c.End,
		breakpoint: c.Breakpoint,
		backstart:  backstart,
	}), nil
}
