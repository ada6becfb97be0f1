package svmaker

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func Test_parse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHeader string
		wantSeq    string
		wantErr    error
	}{
		{
			"single record",
			">seq1 test genome\nACGTACGTAC\n",
			"seq1 test genome",
			"ACGTACGTAC",
			nil,
		},
		{
			"wrapped and lowercase body",
			">seq1\nacgt\nACGT\nac\n",
			"seq1",
			"ACGTACGTAC",
			nil,
		},
		{
			"blank lines between body lines",
			">seq1\nACGT\n\nACGT\n",
			"seq1",
			"ACGTACGT",
			nil,
		},
		{
			"multiple records",
			">seq1\nACGT\n>seq2\nACGT\n",
			"",
			"",
			ErrMultiSequence,
		},
		{
			"invalid base in body",
			">seq1\nACGU\n",
			"",
			"",
			ErrInvalidBase,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr != nil {
				return
			}
			if got.Header != tt.wantHeader {
				t.Errorf("parse().Header = %v, want %v", got.Header, tt.wantHeader)
			}
			if got.Seq != tt.wantSeq {
				t.Errorf("parse().Seq = %v, want %v", got.Seq, tt.wantSeq)
			}
		})
	}
}

func Test_parse_malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			"empty input",
			"",
		},
		{
			"no header line",
			"ACGTACGT\n",
		},
		{
			"header without sequence",
			">seq1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse(strings.NewReader(tt.input)); err == nil {
				t.Error("parse() expected an error, got nil")
			}
		})
	}
}

func TestWrite(t *testing.T) {
	type args struct {
		rec  *Record
		wrap int
	}

	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"body wrapped at four",
			args{&Record{Header: "seq1", Seq: "ACGTACGTAC"}, 4},
			">seq1\nACGT\nACGT\nAC\n",
		},
		{
			"wrap wider than the body",
			args{&Record{Header: "seq1", Seq: "ACGT"}, 70},
			">seq1\nACGT\n",
		},
		{
			"exact multiple of wrap",
			args{&Record{Header: "seq1", Seq: "ACGTACGT"}, 4},
			">seq1\nACGT\nACGT\n",
		},
		{
			"annotated header is kept verbatim",
			args{&Record{Header: "seq1 [deleted 3bp at positions 3-5]", Seq: "ACCGTAC"}, 70},
			">seq1 [deleted 3bp at positions 3-5]\nACCGTAC\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := Write(&b, tt.args.rec, tt.args.wrap); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("Write() = %q, want %q", b.String(), tt.want)
			}
		})
	}
}

// a written record parses back to itself regardless of wrap width.
func Test_parse_roundTrip(t *testing.T) {
	rec := &Record{Header: "seq1 reference", Seq: "ACGTACGTACGTNNACGT"}

	for _, wrap := range []int{1, 4, 7, 70} {
		var b bytes.Buffer
		if err := Write(&b, rec, wrap); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		got, err := parse(&b)
		if err != nil {
			t.Fatalf("parse() error = %v", err)
		}
		if got.Header != rec.Header || got.Seq != rec.Seq {
			t.Errorf("round trip at wrap %d = %+v, want %+v", wrap, got, rec)
		}
	}
}
