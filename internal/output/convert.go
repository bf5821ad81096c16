// internal/output/convert.go
package output

import (
	"gibbs/internal/motif"
	"gibbs/pkg/api"
)

// RunInfo is what a result needs beyond motif.Result.
type RunInfo struct {
	RunID  string
	IDs    []string // sequence identifiers, same order as the candidates
	Seeds  []int64  // one per chain
	Config motif.Config
}

// ToAPIResult converts a search result to its wire form.
func ToAPIResult(info RunInfo, res motif.Result) api.ResultV1 {
	out := api.ResultV1{
		Kind:         api.KindResult,
		RunID:        info.RunID,
		Motif:        res.Motif,
		Accepted:     res.Accepted,
		MotifLength:  info.Config.MotifLength,
		MaxMutations: info.Config.MaxMutations,
		MaxDistance:  res.MaxDistance,
		Iterations:   res.Iterations,
		Restarts:     res.Restarts,
		Chain:        res.Chain,
		Sites:        make([]api.SiteV1, 0, len(res.Candidates)),
	}
	if res.Chain >= 0 && res.Chain < len(info.Seeds) {
		out.Seed = info.Seeds[res.Chain]
	}
	for i, c := range res.Candidates {
		site := api.SiteV1{Seq: c, Mismatches: motif.Hamming(res.Motif, c)}
		if i < len(info.IDs) {
			site.SequenceID = info.IDs[i]
		}
		if i < len(res.Positions) {
			site.Start = res.Positions[i]
			site.End = res.Positions[i] + len(c)
		}
		out.Sites = append(out.Sites, site)
	}
	return out
}

// ToAPIProgress converts a diagnostic snapshot to its wire form.
func ToAPIProgress(runID string, p motif.Progress) api.ProgressV1 {
	return api.ProgressV1{
		Kind:        api.KindProgress,
		RunID:       runID,
		Chain:       p.Chain,
		Iteration:   p.Iteration,
		Total:       p.Total,
		Restarts:    p.Restarts,
		AvgDistance: p.AvgDistance,
		AvgChurn:    p.AvgChurn,
		ChurnScore:  p.ChurnScore,
		Consensus:   p.Consensus,
		MaxDistance: p.MaxDistance,
		SumDistance: p.SumDistance,
	}
}
