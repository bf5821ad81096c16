// internal/motifapp/app.go
package motifapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"gibbs/internal/cmdutil"
	"gibbs/internal/fasta"
	"gibbs/internal/motif"
	"gibbs/internal/motifcli"
	"gibbs/internal/output"
	"gibbs/internal/version"
	"gibbs/internal/writers"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitNotConverged = 1
	ExitUsage        = 2
	ExitWrite        = 3
	ExitCanceled     = 130
)

const toolName = "gibbs"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	flush := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return code
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitWrite
		}
		return code
	}

	fs := motifcli.NewFlagSet(toolName)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = motifcli.ParseArgs(fs, []string{"-h"})
		motifcli.Usage(outw, fs, toolName)
		return flush(ExitOK)
	}

	opts, err := motifcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			motifcli.Usage(outw, fs, toolName)
			return flush(ExitOK)
		}
		fmt.Fprintln(stderr, err)
		motifcli.Usage(outw, fs, toolName)
		return flush(ExitUsage)
	}
	if opts.Version {
		fmt.Fprintf(outw, "%s version %s\n", toolName, version.Version)
		return flush(ExitOK)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	recs, err := fasta.LoadFiles(ctx, opts.SeqFiles)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}
	checkInput(stderr, opts, recs)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := make([]int64, opts.Runs)
	for i := range seeds {
		seeds[i] = seed + int64(i)
	}
	runID := uuid.NewString()

	mon := startMonitor(ctx, opts, runID, outw, stderr)
	cfg := motif.Config{
		MotifLength:   opts.MotifLength,
		MaxMutations:  opts.Mutations,
		MaxIterations: opts.MaxIterations,
		MaxDuration:   opts.MaxDuration,
		Observer:      mon.observer(),
	}

	res, serr := search(ctx, fasta.Sequences(recs), cfg, seeds)
	if merr := mon.close(); merr != nil && !writers.IsBrokenPipe(merr) {
		cmdutil.Errorf(stderr, "%v", merr)
		return ExitWrite
	}

	code := ExitOK
	switch {
	case serr == nil:
	case errors.Is(serr, motif.ErrInvalidConfiguration):
		cmdutil.Errorf(stderr, "%v", serr)
		return flush(ExitUsage)
	case errors.Is(serr, context.Canceled):
		return flush(ExitCanceled)
	case errors.Is(serr, motif.ErrNotConverged):
		cmdutil.Warnf(stderr, opts.Quiet, "%v; reporting the last consensus", serr)
		code = ExitNotConverged
	default:
		cmdutil.Errorf(stderr, "%v", serr)
		return flush(ExitWrite)
	}

	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	apiRes := output.ToAPIResult(output.RunInfo{RunID: runID, IDs: ids, Seeds: seeds, Config: cfg}, res)
	if err := writers.WriteResult(opts.Output, outw, apiRes, opts.Header); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return flush(code)
}

func search(ctx context.Context, seqs []string, cfg motif.Config, seeds []int64) (motif.Result, error) {
	s, err := motif.New(ctx, seqs, cfg)
	if err != nil {
		return motif.Result{}, err
	}
	return s.SearchParallel(ctx, seeds)
}

// checkInput warns about inputs the sampler accepts but handles poorly.
func checkInput(stderr io.Writer, opts motifcli.Options, recs []fasta.Record) {
	for _, r := range recs {
		if odd := cmdutil.NonNucleotide(r.Seq); len(odd) > 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "sequence %q contains non-ACGT symbols %q; they are scored like any other symbol", r.ID, odd)
		}
	}
	if opts.Mutations >= opts.MotifLength {
		cmdutil.Warnf(stderr, opts.Quiet, "--mutations (%d) ≥ --motif-length (%d): any consensus will be accepted", opts.Mutations, opts.MotifLength)
	}
}
