package svmaker

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

var stderr = log.New(os.Stderr, "", 0)

// Read parses a single-record FASTA file into a Record. "-" reads stdin,
// which is what lets operations be chained through a pipe.
func Read(path string) (*Record, error) {
	if path == "" || path == "-" {
		return parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parse(f)
}

// parse reads one FASTA record: a '>' header line followed by sequence
// lines. A second header line means multi-record input, which is rejected.
func parse(r io.Reader) (*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty input: expected a FASTA record")
	}
	header := strings.TrimSpace(scanner.Text())
	if !strings.HasPrefix(header, ">") {
		return nil, fmt.Errorf("not a FASTA record: first line must start with '>'")
	}

	var seq strings.Builder
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			return nil, fmt.Errorf("%w: only single-sequence FASTA input is supported", ErrMultiSequence)
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if seq.Len() == 0 {
		return nil, fmt.Errorf("no sequence found in input")
	}

	return NewRecord(strings.TrimPrefix(header, ">"), seq.String())
}

// Write renders rec as FASTA with the body wrapped at wrap columns.
func Write(w io.Writer, rec *Record, wrap int) error {
	if wrap < 1 {
		wrap = rec.Length()
	}

	if _, err := fmt.Fprintf(w, ">%s\n", rec.Header); err != nil {
		return err
	}
	for i := 0; i < len(rec.Seq); i += wrap {
		end := i + wrap
		if end > len(rec.Seq) {
			end = len(rec.Seq)
		}
		if _, err := fmt.Fprintln(w, rec.Seq[i:end]); err != nil {
			return err
		}
	}
	return nil
}

// WriteOutput writes rec to the file at path, or to stdout when path is
// empty or "-".
func WriteOutput(path string, rec *Record, wrap int) error {
	if path == "" || path == "-" {
		return Write(os.Stdout, rec, wrap)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Write(f, rec, wrap)
}
