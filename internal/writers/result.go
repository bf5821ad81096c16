// internal/writers/result.go
package writers

import (
	"fmt"
	"io"

	"gibbs/internal/jsonutil"
	"gibbs/pkg/api"
)

// TSVHeader is the column header of the per-sequence site table.
const TSVHeader = "sequence_id\tstart\tend\tsite\tmismatches"

func init() {
	RegisterResult("text", writeResultText)
	RegisterResult("json", func(w io.Writer, res api.ResultV1, _ bool) error {
		return jsonutil.EncodePretty(w, res)
	})
	RegisterResult("jsonl", func(w io.Writer, res api.ResultV1, _ bool) error {
		return jsonutil.EncodeLine(w, res)
	})
}

func writeSummary(w io.Writer, res api.ResultV1) error {
	status := "accepted"
	if !res.Accepted {
		status = "not-converged"
	}
	_, err := fmt.Fprintf(w, "# motif=%s status=%s max_distance=%d/%d iterations=%d restarts=%d chain=%d seed=%d run_id=%s\n",
		res.Motif, status, res.MaxDistance, res.MaxMutations, res.Iterations, res.Restarts, res.Chain, res.Seed, res.RunID)
	return err
}

func writeResultText(w io.Writer, res api.ResultV1, header bool) error {
	if err := writeSummary(w, res); err != nil {
		return err
	}
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, s := range res.Sites {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\n", s.SequenceID, s.Start, s.End, s.Seq, s.Mismatches); err != nil {
			return err
		}
	}
	return nil
}
