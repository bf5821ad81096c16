// internal/writers/progress.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"gibbs/internal/jsonlutil"
	"gibbs/pkg/api"
)

// FormatProgress renders a snapshot as one human-readable trace line.
func FormatProgress(p api.ProgressV1) string {
	return fmt.Sprintf("chain=%d iter=%d total=%d restarts=%d avg_dist=%.4f avg_churn=%.4f churn_score=%.4f consensus=%s max_dist=%d sum_dist=%d",
		p.Chain, p.Iteration, p.Total, p.Restarts, p.AvgDistance, p.AvgChurn, p.ChurnScore, p.Consensus, p.MaxDistance, p.SumDistance)
}

// WriteProgressText writes one trace line.
func WriteProgressText(w io.Writer, p api.ProgressV1) error {
	_, err := fmt.Fprintln(w, FormatProgress(p))
	return err
}

// StartProgressJSONLWriter streams each snapshot as one JSON line (v1).
func StartProgressJSONLWriter(out io.Writer, bufSize int) *jsonlutil.Stream[api.ProgressV1] {
	return jsonlutil.Start[api.ProgressV1](out, bufSize,
		func(enc *json.Encoder, p api.ProgressV1) error {
			return enc.Encode(p)
		},
		IsBrokenPipe,
	)
}
