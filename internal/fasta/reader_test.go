package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 first record
ACGT
acgt
>seq2|gi|42
GG TT
`

func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestReadCtx_Records(t *testing.T) {
	var got []Record
	err := ReadCtx(context.Background(), strings.NewReader(plain), func(r Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadCtx: %v", err)
	}
	want := []Record{{ID: "seq1", Seq: "ACGTACGT"}, {ID: "seq2", Seq: "GGTT"}}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadCtx_Errors(t *testing.T) {
	tests := []struct {
		name, in string
	}{
		{"empty record", ">a\n>b\nACGT\n"},
		{"trailing empty record", ">a\nACGT\n>b\n"},
		{"data before header", "ACGT\n>a\nACGT\n"},
		{"header without id", ">\nACGT\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ReadCtx(context.Background(), strings.NewReader(tc.in), func(Record) error { return nil })
			if err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
		})
	}
	err := ReadCtx(context.Background(), strings.NewReader(">a\n>b\nA\n"), func(Record) error { return nil })
	if !errors.Is(err, ErrEmptyRecord) {
		t.Fatalf("want ErrEmptyRecord, got %v", err)
	}
}

func TestReadCtx_CanceledYieldsNoRecords(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := ReadCtx(ctx, strings.NewReader(plain), func(Record) error { n++; return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 records, got %d", n)
	}
}

func TestLoadPathCtx_Gzip(t *testing.T) {
	// no .gz suffix: detected by magic number
	path := writeGz(t, "seqs.fa", plain)
	recs, err := LoadPathCtx(context.Background(), path)
	if err != nil {
		t.Fatalf("load gz: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "seq1" || recs[1].ID != "seq2" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestLoadPathCtx_Stdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	recs, err := LoadPathCtx(context.Background(), "-")
	if err != nil {
		t.Fatalf("load stdin: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", len(recs))
	}
}

func TestLoadFiles_OrderAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	if err := os.WriteFile(a, []byte(">x\nAC\n>y\nGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte(">z\nTT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	recs, err := LoadFiles(context.Background(), []string{a, b})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if got := strings.Join(Sequences(recs), ","); got != "AC,GT,TT" {
		t.Fatalf("sequences = %s", got)
	}

	if _, err := LoadFiles(context.Background(), []string{a, a}); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
	if _, err := LoadFiles(context.Background(), []string{filepath.Join(dir, "missing.fa")}); err == nil {
		t.Fatal("expected open error")
	}
}

func TestParseHeaderID(t *testing.T) {
	cases := map[string]string{
		"seq1":             "seq1",
		"seq1 description": "seq1",
		"  seq1\tdesc":     "seq1",
		"gi|12345|ref|X|":  "gi",
		"":                 "",
	}
	for in, want := range cases {
		if got := ParseHeaderID([]byte(in)); got != want {
			t.Errorf("ParseHeaderID(%q) = %q, want %q", in, got, want)
		}
	}
}
