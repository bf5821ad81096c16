// internal/motifcli/usage.go
package motifcli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"gibbs/internal/version"
)

// Usage prints the help text for fs to out. Defaults are read back from the
// registered flags so the text cannot drift from them.
func Usage(out io.Writer, fs *pflag.FlagSet, name string) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – stochastic motif discovery (Gibbs sampling)\n\n", name)
	fmt.Fprintln(out, "License: MIT")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s -l 8 -e 1 seqs.fa\n", name)
	fmt.Fprintf(out, "  %s -l 15 -e 5 --runs 4 --max-iterations 200000 -o json seqs.fa.gz\n", name)
	fmt.Fprintf(out, "  zcat seqs.fa.gz | %s -l 10 -s -\n", name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable, globs ok) or '-' for STDIN")
	fmt.Fprintln(out, "      --config file           YAML/TOML/JSON file with the same keys as the long flags")

	fmt.Fprintln(out, "\nSearch:")
	fmt.Fprintln(out, "  -l, --motif-length int      Motif length [*]")
	fmt.Fprintf(out, "  -e, --mutations int         Max mismatches between motif and each site [%s]\n", def("mutations"))
	fmt.Fprintf(out, "      --seed int              Random seed (0 = time based) [%s]\n", def("seed"))
	fmt.Fprintf(out, "  -r, --runs int              Independent chains run in parallel [%s]\n", def("runs"))
	fmt.Fprintf(out, "      --max-iterations int    Iteration budget per chain (0 = unbounded) [%s]\n", def("max-iterations"))
	fmt.Fprintf(out, "      --max-duration dur      Wall-clock budget, e.g. 30s (0 = unbounded) [%s]\n", def("max-duration"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | pretty [%s]\n", def("output"))
	fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
	fmt.Fprintf(out, "      --trace                 Progress snapshots every 32 iterations [%s]\n", def("trace"))
	fmt.Fprintf(out, "      --progress              Progress bar on stderr [%s]\n", def("progress"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

	fmt.Fprintln(out, "\nExit codes: 0 motif found, 1 budget exhausted, 2 usage/input error, 3 write error, 130 interrupted")
}
