package pretty

import (
	"fmt"
	"strings"

	"gibbs/pkg/api"
)

// Options control the ASCII rendering.
type Options struct {
	// Identifiers longer than this are cut with a trailing '~'. If <=0, use default (24).
	MaxName int

	// Print a dot where a site agrees with the motif instead of the letter.
	ShowDots bool

	// Draw the conservation bars row under the motif line.
	ShowBars bool

	// Glyphs
	ExactGlyph   string // column identical in every site; default "|"
	PartialGlyph string // column with at least one mismatch; default "¦"
	DotGlyph     string // default "."
}

// DefaultOptions is the look used by the "pretty" output format.
var DefaultOptions = Options{
	MaxName:      24,
	ShowDots:     true,
	ShowBars:     true,
	ExactGlyph:   "|",
	PartialGlyph: "¦",
	DotGlyph:     ".",
}

const linePrefix = "# "

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "~"
}

// barsLine marks each motif column: exact when every site carries the
// motif's symbol there, partial otherwise.
func barsLine(motif string, sites []api.SiteV1, exactGlyph, partialGlyph string) string {
	var b strings.Builder
	for i := 0; i < len(motif); i++ {
		g := exactGlyph
		for _, s := range sites {
			if i >= len(s.Seq) || s.Seq[i] != motif[i] {
				g = partialGlyph
				break
			}
		}
		b.WriteString(g)
	}
	return b.String()
}

// siteLine renders a site against the motif.
func siteLine(motif, site string, showDots bool, dot string) string {
	if !showDots {
		return site
	}
	var b strings.Builder
	for i := 0; i < len(site); i++ {
		if i < len(motif) && site[i] == motif[i] {
			b.WriteString(dot)
			continue
		}
		b.WriteByte(site[i])
	}
	return b.String()
}

// RenderAlignment prints the motif with every site stacked under it.
func RenderAlignment(res api.ResultV1) string {
	return RenderAlignmentWithOptions(res, DefaultOptions)
}

// RenderAlignmentWithOptions prints the motif block using opt.
func RenderAlignmentWithOptions(res api.ResultV1, opt Options) string {
	var b strings.Builder
	if res.Motif == "" || len(res.Sites) == 0 {
		fmt.Fprintf(&b, "%s(pretty not available: no sites)\n\n", linePrefix)
		return b.String()
	}

	maxName := opt.MaxName
	if maxName <= 0 {
		maxName = DefaultOptions.MaxName
	}
	dot := orDefault(opt.DotGlyph, DefaultOptions.DotGlyph)
	exact := orDefault(opt.ExactGlyph, DefaultOptions.ExactGlyph)
	partial := orDefault(opt.PartialGlyph, DefaultOptions.PartialGlyph)

	nameW := len("motif")
	posW := 1
	for _, s := range res.Sites {
		nameW = max(nameW, min(len(s.SequenceID), maxName))
		posW = max(posW, len(fmt.Sprint(s.Start)))
	}
	pad := strings.Repeat(" ", nameW+1+posW+1)

	fmt.Fprintf(&b, "%s%-*s %*s %s\n", linePrefix, nameW, "motif", posW, "", res.Motif)
	if opt.ShowBars {
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, pad, barsLine(res.Motif, res.Sites, exact, partial))
	}
	for _, s := range res.Sites {
		fmt.Fprintf(&b, "%s%-*s %*d %s %d\n", linePrefix, nameW, clip(s.SequenceID, maxName), posW, s.Start,
			siteLine(res.Motif, s.Seq, opt.ShowDots, dot), s.Mismatches)
	}
	b.WriteString("\n")
	return b.String()
}
