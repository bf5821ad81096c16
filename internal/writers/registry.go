// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"gibbs/pkg/api"
)

// ResultWriter renders one result. header toggles column headers in text.
type ResultWriter func(w io.Writer, res api.ResultV1, header bool) error

// ResultWriters maps an output format to its writer. Formats register in
// init() blocks of their own files.
var ResultWriters = map[string]ResultWriter{}

// RegisterResult adds or replaces the writer for format.
func RegisterResult(format string, fn ResultWriter) { ResultWriters[format] = fn }

// WriteResult dispatches to the writer registered for format.
func WriteResult(format string, w io.Writer, res api.ResultV1, header bool) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown result format %q (no writer registered)", format)
	}
	return fn(w, res, header)
}

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for f := range ResultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
