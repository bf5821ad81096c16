package cmdutil

import (
	"bytes"
	"testing"
)

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, false, "x=%d", 1)
	if buf.String() != "WARN: x=1\n" {
		t.Fatalf("got %q", buf.String())
	}
	buf.Reset()
	Warnf(&buf, true, "x=%d", 1)
	if buf.Len() != 0 {
		t.Fatalf("quiet must suppress, got %q", buf.String())
	}
}

func TestNonNucleotide(t *testing.T) {
	if got := string(NonNucleotide("ACGTNNRACGT-")); got != "-NR" {
		t.Fatalf("got %q", got)
	}
	if got := NonNucleotide("ACGT"); len(got) != 0 {
		t.Fatalf("got %q", got)
	}
}
