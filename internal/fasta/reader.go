// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one FASTA entry. Seq is uppercased with whitespace removed.
type Record struct {
	ID  string
	Seq string
}

// ErrEmptyRecord is returned for a header with no sequence lines.
var ErrEmptyRecord = errors.New("fasta: empty record")

// ReadCtx scans FASTA from r and calls emit once per record, in file order.
// Cancellation via ctx is checked between lines.
func ReadCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // single-line genomes
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id     string
		inRec  bool
		seq    = make([]byte, 0, 1<<16)
		lineNo int
	)
	flush := func() error {
		if !inRec {
			return nil
		}
		if len(seq) == 0 {
			return fmt.Errorf("%w %q (line %d)", ErrEmptyRecord, id, lineNo)
		}
		return emit(Record{ID: id, Seq: string(bytes.ToUpper(seq))})
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = ParseHeaderID(line[1:])
			if id == "" {
				return fmt.Errorf("fasta: line %d: header without identifier", lineNo)
			}
			inRec = true
			seq = seq[:0]
			continue
		}
		if !inRec {
			return fmt.Errorf("fasta: line %d: sequence data before first header", lineNo)
		}
		for _, b := range line {
			if b != ' ' && b != '\t' {
				seq = append(seq, b)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ParseHeaderID returns the identifier of a header line (without '>'):
// the text up to the first whitespace or '|'.
func ParseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t|"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
