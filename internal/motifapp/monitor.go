// internal/motifapp/monitor.go
package motifapp

import (
	"context"
	"io"
	"sync"

	"gopkg.in/cheggaaa/pb.v1"

	"gibbs/internal/jsonlutil"
	"gibbs/internal/motif"
	"gibbs/internal/motifcli"
	"gibbs/internal/output"
	"gibbs/internal/writers"
	"gibbs/pkg/api"
)

// monitor fans progress snapshots out to the trace sinks and the progress
// bar. Chains call it concurrently.
type monitor struct {
	ctx   context.Context
	runID string

	mu     sync.Mutex
	text   io.Writer // trace lines, nil when disabled
	bar    *pb.ProgressBar
	totals map[int]int // latest total iterations per chain

	stream *jsonlutil.Stream[api.ProgressV1]
}

func startMonitor(ctx context.Context, o motifcli.Options, runID string, stdout, stderr io.Writer) *monitor {
	m := &monitor{ctx: ctx, runID: runID, totals: make(map[int]int)}
	if o.Trace {
		if o.Output == motifcli.OutputJSONL {
			m.stream = writers.StartProgressJSONLWriter(stdout, 64)
		} else {
			m.text = stderr
		}
	}
	if o.Progress && o.MaxIterations > 0 {
		m.bar = pb.New(o.MaxIterations * o.Runs)
		m.bar.Output = stderr
		m.bar.ShowSpeed = false
		m.bar.SetMaxWidth(80)
		m.bar.Start()
	}
	return m
}

// observer returns nil when no sink is enabled, so the sampler skips
// building snapshots altogether.
func (m *monitor) observer() func(motif.Progress) {
	if m.text == nil && m.stream == nil && m.bar == nil {
		return nil
	}
	return m.observe
}

func (m *monitor) observe(p motif.Progress) {
	rec := output.ToAPIProgress(m.runID, p)
	if m.stream != nil {
		_ = m.stream.Send(m.ctx, rec)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.text != nil {
		_ = writers.WriteProgressText(m.text, rec)
	}
	if m.bar != nil {
		m.totals[p.Chain] = p.Total
		sum := 0
		for _, n := range m.totals {
			sum += n
		}
		m.bar.Set(sum)
	}
}

// close finishes the bar and drains the JSONL stream.
func (m *monitor) close() error {
	if m.bar != nil {
		m.bar.Finish()
	}
	if m.stream != nil {
		return m.stream.Close()
	}
	return nil
}
