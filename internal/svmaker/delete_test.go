package svmaker

import (
	"errors"
	"testing"
)

func TestDelete_Apply(t *testing.T) {
	type args struct {
		start int
		end   int
	}

	rec := &Record{Header: "ref", Seq: "ACGTACGTAC"}

	tests := []struct {
		name       string
		args       args
		wantSeq    string
		wantHeader string
		wantErr    error
	}{
		{
			"middle region",
			args{3, 5},
			"ACCGTAC",
			"ref [deleted 3bp at positions 3-5]",
			nil,
		},
		{
			"single base",
			args{1, 1},
			"CGTACGTAC",
			"ref [deleted 1bp at positions 1-1]",
			nil,
		},
		{
			"suffix",
			args{8, 10},
			"ACGTACG",
			"ref [deleted 3bp at positions 8-10]",
			nil,
		},
		{
			"inverted range",
			args{8, 5},
			"",
			"",
			ErrInvertedRange,
		},
		{
			"end beyond sequence",
			args{5, 11},
			"",
			"",
			ErrOutOfBoundsRegion,
		},
		{
			"zero start",
			args{0, 5},
			"",
			"",
			ErrOutOfBoundsRegion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Delete{Start: tt.args.start, End: tt.args.end}.Apply(rec)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Delete.Apply() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr != nil {
				return
			}
			if got.Seq != tt.wantSeq {
				t.Errorf("Delete.Apply().Seq = %v, want %v", got.Seq, tt.wantSeq)
			}
			if got.Header != tt.wantHeader {
				t.Errorf("Delete.Apply().Header = %v, want %v", got.Header, tt.wantHeader)
			}
		})
	}
}

// deleting [s, e] shortens the sequence by e - s + 1 and leaves the input
// record untouched.
func TestDelete_Apply_length(t *testing.T) {
	rec := &Record{Header: "ref", Seq: "ACGTACGTAC"}

	for start := 1; start <= rec.Length(); start++ {
		for end := start; end <= rec.Length(); end++ {
			got, err := Delete{Start: start, End: end}.Apply(rec)
			if err != nil {
				t.Fatalf("Delete{%d, %d}.Apply() error = %v", start, end, err)
			}
			if want := rec.Length() - (end - start + 1); got.Length() != want {
				t.Errorf("Delete{%d, %d}.Apply() length = %d, want %d", start, end, got.Length(), want)
			}
		}
	}

	if rec.Seq != "ACGTACGTAC" {
		t.Errorf("input record was mutated: %v", rec.Seq)
	}
}
