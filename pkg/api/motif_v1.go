// pkg/api/motif_v1.go
package api

// Record kinds on a JSONL stream.
const (
	KindProgress = "progress"
	KindResult   = "result"
)

// SiteV1 is the candidate window a search settled on in one sequence.
type SiteV1 struct {
	SequenceID string `json:"sequence_id"`
	Start      int    `json:"start"` // 0-based, inclusive
	End        int    `json:"end"`   // exclusive
	Seq        string `json:"seq"`
	Mismatches int    `json:"mismatches"` // against the motif
}

// ResultV1 is the stable JSON/JSONL schema for a search outcome.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Kind         string   `json:"kind"`
	RunID        string   `json:"run_id"`
	Motif        string   `json:"motif"`
	Accepted     bool     `json:"accepted"`
	MotifLength  int      `json:"motif_length"`
	MaxMutations int      `json:"max_mutations"`
	MaxDistance  int      `json:"max_distance"`
	Iterations   int      `json:"iterations"`
	Restarts     int      `json:"restarts"`
	Chain        int      `json:"chain"`
	Seed         int64    `json:"seed"`
	Sites        []SiteV1 `json:"sites"`
}

// ProgressV1 is one periodic diagnostic snapshot of a search chain.
type ProgressV1 struct {
	Kind        string  `json:"kind"`
	RunID       string  `json:"run_id"`
	Chain       int     `json:"chain"`
	Iteration   int     `json:"iteration"`
	Total       int     `json:"total"`
	Restarts    int     `json:"restarts"`
	AvgDistance float64 `json:"avg_distance"`
	AvgChurn    float64 `json:"avg_churn"`
	ChurnScore  float64 `json:"churn_score"`
	Consensus   string  `json:"consensus"`
	MaxDistance int     `json:"max_distance"`
	SumDistance int     `json:"sum_distance"`
}
