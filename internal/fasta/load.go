package fasta

import (
	"context"
	"fmt"
)

// LoadPathCtx reads every record of one file ("-" for stdin).
func LoadPathCtx(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var recs []Record
	err = ReadCtx(ctx, rc, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// LoadFiles reads all records of paths, in order. Identifiers must be unique
// across files.
func LoadFiles(ctx context.Context, paths []string) ([]Record, error) {
	var (
		out  []Record
		seen = make(map[string]string)
	)
	for _, p := range paths {
		recs, err := LoadPathCtx(ctx, p)
		if err != nil {
			return nil, err
		}
		for _, r := range recs {
			if prev, dup := seen[r.ID]; dup {
				return nil, fmt.Errorf("duplicate sequence id %q in %s (first seen in %s)", r.ID, p, prev)
			}
			seen[r.ID] = p
			out = append(out, r)
		}
	}
	return out, nil
}

// Sequences returns the sequence strings of recs.
func Sequences(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Seq
	}
	return out
}
