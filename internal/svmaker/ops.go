package svmaker

// Operation is one structural variant to apply against a record. The set is
// closed: Delete, Insert, Invert, Duplicate and Copyback are the only
// variants. An operation validates all of its coordinates before touching
// any bases and returns a new record; the input is never mutated.
type Operation interface {
	Apply(r *Record) (*Record, error)
}

// Apply runs a single operation against a record.
func Apply(r *Record, op Operation) (*Record, error) {
	return op.Apply(r)
}
