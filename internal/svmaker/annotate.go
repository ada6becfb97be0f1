package svmaker

import "fmt"

type editKind int

const (
	editDelete editKind = iota
	editInsert
	editInvert
	editRevComp
	editDuplicate
	editTandem
	editCopyback
	editSnapback
)

// edit is the resolved description of one completed operation: which kind,
// the coordinates it acted on, and how many bases were involved.
type edit struct {
	kind   editKind
	start  int // 1-based inclusive source region start
	end    int // 1-based inclusive source region end
	pos    int // insertion target
	length int // number of bases deleted, inserted, inverted or copied

	// copyback fields
	gend       GenomeEnd
	breakpoint int
	backstart  int
}

// clause renders the canonical provenance clause for an edit. Downstream
// tooling parses these out of headers, so the wording is fixed.
func (e edit) clause() string {
	switch e.kind {
	case editDelete:
		return fmt.Sprintf("deleted %dbp at positions %d-%d", e.length, e.start, e.end)
	case editInsert:
		return fmt.Sprintf("inserted %dbp at position %d", e.length, e.pos)
	case editInvert:
		return fmt.Sprintf("inverted %dbp at positions %d-%d", e.length, e.start, e.end)
	case editRevComp:
		return fmt.Sprintf("reverse complemented %dbp at positions %d-%d", e.length, e.start, e.end)
	case editDuplicate:
		return fmt.Sprintf("duplicated %dbp from positions %d-%d to position %d", e.length, e.start, e.end, e.pos)
	case editTandem:
		return fmt.Sprintf("tandem duplicated %dbp at positions %d-%d", e.length, e.start, e.end)
	case editCopyback:
		if e.gend == ThreePrime {
			return fmt.Sprintf("3' copyback up to position %d of reference revcomp then reverse complement of position %d on", e.breakpoint, e.backstart)
		}
		return fmt.Sprintf("5' copyback up to position %d then reverse complement of position %d on", e.breakpoint, e.backstart)
	case editSnapback:
		if e.gend == ThreePrime {
			return fmt.Sprintf("3' copyback (snapback) at position %d of reference revcomp", e.breakpoint)
		}
		return fmt.Sprintf("5' copyback (snapback) at position %d", e.breakpoint)
	}
	return ""
}

// annotate builds the result record for an edit: the transformed sequence
// under the incoming header plus one appended clause. Clauses accumulate
// across chained operations and are never reordered.
func (r *Record) annotate(seq string, e edit) *Record {
	return &Record{
		Header: fmt.Sprintf("%s [%s]", r.Header, e.clause()),
		Seq:    seq,
	}
}
