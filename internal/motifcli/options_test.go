package motifcli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	return ParseArgs(NewFlagSet("gibbs"), argv)
}

func TestParseArgs_Defaults(t *testing.T) {
	o, err := parse(t, "-l", "8", "seqs.fa")
	require.NoError(t, err)
	assert.Equal(t, []string{"seqs.fa"}, o.SeqFiles)
	assert.Equal(t, 8, o.MotifLength)
	assert.Equal(t, 0, o.Mutations)
	assert.Equal(t, 1, o.Runs)
	assert.Equal(t, OutputText, o.Output)
	assert.True(t, o.Header)
	assert.Zero(t, o.MaxIterations)
	assert.Zero(t, o.MaxDuration)
}

func TestParseArgs_AllFlags(t *testing.T) {
	o, err := parse(t,
		"-s", "a.fa", "--sequences", "b.fa",
		"-l", "15", "-e", "5", "--seed", "42", "-r", "3",
		"--max-iterations", "1000", "--max-duration", "2m",
		"-o", "jsonl", "--no-header", "--trace", "--progress", "-q",
		"c.fa",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.fa", "b.fa", "c.fa"}, o.SeqFiles)
	assert.Equal(t, 15, o.MotifLength)
	assert.Equal(t, 5, o.Mutations)
	assert.Equal(t, int64(42), o.Seed)
	assert.Equal(t, 3, o.Runs)
	assert.Equal(t, 1000, o.MaxIterations)
	assert.Equal(t, 2*time.Minute, o.MaxDuration)
	assert.Equal(t, OutputJSONL, o.Output)
	assert.False(t, o.Header)
	assert.True(t, o.Trace)
	assert.True(t, o.Progress)
	assert.True(t, o.Quiet)
}

func TestParseArgs_HelpAndVersion(t *testing.T) {
	_, err := parse(t, "-h")
	assert.True(t, errors.Is(err, pflag.ErrHelp))

	o, err := parse(t, "--version")
	require.NoError(t, err)
	assert.True(t, o.Version)
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"no input", []string{"-l", "8"}, "sequence file"},
		{"no length", []string{"a.fa"}, "--motif-length"},
		{"negative mutations", []string{"-l", "8", "-e", "-1", "a.fa"}, "--mutations"},
		{"zero runs", []string{"-l", "8", "-r", "0", "a.fa"}, "--runs"},
		{"negative budget", []string{"-l", "8", "--max-iterations", "-5", "a.fa"}, "--max-iterations"},
		{"bad output", []string{"-l", "8", "-o", "xml", "a.fa"}, "--output"},
		{"progress without budget", []string{"-l", "8", "--progress", "a.fa"}, "--progress"},
		{"stdin twice", []string{"-l", "8", "-", "-"}, "stdin"},
		{"unknown flag", []string{"-l", "8", "--bogus", "a.fa"}, "bogus"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.argv...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseArgs_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "gibbs.yaml")
	body := strings.Join([]string{
		"sequences: [one.fa, two.fa]",
		"motif-length: 12",
		"mutations: 2",
		"runs: 4",
		"max-iterations: 5000",
		"output: json",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o644))

	o, err := parse(t, "--config", cfg, "-e", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"one.fa", "two.fa"}, o.SeqFiles)
	assert.Equal(t, 12, o.MotifLength)
	assert.Equal(t, 3, o.Mutations, "explicit flag wins over the file")
	assert.Equal(t, 4, o.Runs)
	assert.Equal(t, 5000, o.MaxIterations)
	assert.Equal(t, OutputJSON, o.Output)

	_, err = parse(t, "--config", filepath.Join(dir, "missing.yaml"), "-l", "8", "a.fa")
	require.Error(t, err)
}

func TestUsage_ShowsDefaults(t *testing.T) {
	fs := NewFlagSet("gibbs")
	Register(fs, &Options{})
	var buf bytes.Buffer
	Usage(&buf, fs, "gibbs")
	out := buf.String()
	assert.Contains(t, out, "--motif-length")
	assert.Contains(t, out, "Output: text | json | jsonl | pretty [text]")
	assert.Contains(t, out, "Independent chains run in parallel [1]")
}
