// internal/motifcli/options.go
package motifcli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gibbs/internal/cliutil"
)

// Output formats.
const (
	OutputText   = "text"
	OutputJSON   = "json"
	OutputJSONL  = "jsonl"
	OutputPretty = "pretty"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string
	Config   string

	// Search
	MotifLength   int
	Mutations     int
	Seed          int64 // 0 = time based
	Runs          int   // independent chains run in parallel
	MaxIterations int   // per chain, 0 = unbounded
	MaxDuration   time.Duration

	// Output
	Output   string
	Header   bool // true unless --no-header
	Trace    bool
	Progress bool

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a FlagSet with pflag's own error printing silenced;
// callers print usage through Usage.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// Register wires all flags onto fs and returns the help flag.
// --no-header is read back as the inverse of Options.Header.
func Register(fs *pflag.FlagSet, o *Options) (help *bool) {
	help = new(bool)

	fs.StringArrayVarP(&o.SeqFiles, "sequences", "s", nil, "FASTA file(s) (repeatable) or '-'")
	fs.StringVar(&o.Config, "config", "", "config file (yaml|toml|json); flags override it")

	fs.IntVarP(&o.MotifLength, "motif-length", "l", 0, "motif length [*]")
	fs.IntVarP(&o.Mutations, "mutations", "e", 0, "max mismatches between motif and each site [0]")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed (0 = time based) [0]")
	fs.IntVarP(&o.Runs, "runs", "r", 1, "independent chains run in parallel [1]")
	fs.IntVar(&o.MaxIterations, "max-iterations", 0, "iteration budget per chain (0 = unbounded) [0]")
	fs.DurationVar(&o.MaxDuration, "max-duration", 0, "wall-clock budget (0 = unbounded) [0s]")

	fs.StringVarP(&o.Output, "output", "o", OutputText, "output: text | json | jsonl | pretty [text]")
	fs.Bool("no-header", false, "suppress header line in text [false]")
	fs.BoolVar(&o.Trace, "trace", false, "emit progress snapshots (stderr, or stdout with jsonl) [false]")
	fs.BoolVar(&o.Progress, "progress", false, "show a progress bar on stderr (needs --max-iterations) [false]")

	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress non-essential warnings [false]")
	fs.BoolVarP(&o.Version, "version", "v", false, "print version and exit [false]")
	fs.BoolVarP(help, "help", "h", false, "show this help message [false]")
	return help
}

// ParseArgs registers and parses all flags, merges the optional config file
// (explicit flags win) and validates the result.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	help := Register(fs, &opt)

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if *help {
		return opt, pflag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return opt, err
	}
	if opt.Config != "" {
		v.SetConfigFile(opt.Config)
		if err := v.ReadInConfig(); err != nil {
			return opt, fmt.Errorf("read config %s: %w", opt.Config, err)
		}
	}
	opt.SeqFiles = v.GetStringSlice("sequences")
	opt.MotifLength = v.GetInt("motif-length")
	opt.Mutations = v.GetInt("mutations")
	opt.Seed = v.GetInt64("seed")
	opt.Runs = v.GetInt("runs")
	opt.MaxIterations = v.GetInt("max-iterations")
	opt.MaxDuration = v.GetDuration("max-duration")
	opt.Output = v.GetString("output")
	opt.Trace = v.GetBool("trace")
	opt.Progress = v.GetBool("progress")
	opt.Quiet = v.GetBool("quiet")
	opt.Header = !v.GetBool("no-header")

	if pos := fs.Args(); len(pos) > 0 {
		exp, err := cliutil.ExpandPositionals(pos)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if cliutil.CountStdin(o.SeqFiles) > 1 {
		return errors.New("'-' (stdin) may be given only once")
	}
	if o.MotifLength <= 0 {
		return errors.New("--motif-length must be > 0")
	}
	if o.Mutations < 0 {
		return errors.New("--mutations must be ≥ 0")
	}
	if o.Runs < 1 {
		return errors.New("--runs must be ≥ 1")
	}
	if o.MaxIterations < 0 {
		return errors.New("--max-iterations must be ≥ 0")
	}
	if o.MaxDuration < 0 {
		return errors.New("--max-duration must be ≥ 0")
	}
	switch o.Output {
	case OutputText, OutputJSON, OutputJSONL, OutputPretty:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Progress && o.MaxIterations == 0 {
		return errors.New("--progress requires --max-iterations")
	}
	return nil
}
