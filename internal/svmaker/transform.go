package svmaker

// complements maps each base to its Watson-Crick partner. N pairs with itself.
var complements = [256]byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
	'N': 'N',
}

// reverse returns seq with its bases in the opposite order
func reverse(seq string) string {
	b := []byte(seq)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// revComp returns the reverse complement of seq
func revComp(seq string) string {
	n := len(seq)
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = complements[seq[n-1-i]]
	}
	return string(b)
}
