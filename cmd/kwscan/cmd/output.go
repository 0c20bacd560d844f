package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/corey/kwscan/internal/domain/search"
	"github.com/corey/kwscan/internal/ports"
	"github.com/fatih/color"
)

// palette holds the output styles; all are identity functions when color is off.
type palette struct {
	bold    func(a ...interface{}) string
	keyword func(a ...interface{}) string
	file    func(a ...interface{}) string
	miss    func(a ...interface{}) string
	dim     func(a ...interface{}) string
}

func newPalette(useColor bool) palette {
	style := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		bold:    style(color.Bold),
		keyword: style(color.FgMagenta, color.Bold),
		file:    style(color.FgCyan),
		miss:    style(color.FgYellow),
		dim:     style(color.FgHiBlack),
	}
}

// uniqueKeywords returns keywords in first-seen order without duplicates.
func uniqueKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}

// writeRun renders a run result for the terminal.
//
//	book (2 files)
//	  corpus/a.txt
//	  corpus/b.txt
//	summer: not found
//	⚡ 2/2 keywords found │ 3 files scanned │ 0 skipped │ 12ms
func writeRun(w io.Writer, run *ports.Run, skipped []string, p palette) {
	result := search.Result(run.Result).Sorted()
	keywords := uniqueKeywords(run.Keywords)

	var sb strings.Builder
	found := 0
	for _, kw := range keywords {
		files := result.Files(kw)
		if len(files) == 0 {
			sb.WriteString(fmt.Sprintf("%s: %s\n", p.keyword(kw), p.miss("not found")))
			continue
		}
		found++
		noun := "files"
		if len(files) == 1 {
			noun = "file"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", p.keyword(kw), p.dim(fmt.Sprintf("(%d %s)", len(files), noun))))
		for _, f := range files {
			sb.WriteString(fmt.Sprintf("  %s\n", p.file(f)))
		}
	}

	if len(skipped) > 0 {
		sb.WriteString(p.miss("skipped:") + "\n")
		for _, f := range skipped {
			sb.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	sb.WriteString(p.bold(fmt.Sprintf("⚡ %d/%d keywords found", found, len(keywords))))
	sb.WriteString(p.dim(fmt.Sprintf(" │ %d files scanned │ %d skipped │ %s",
		run.FilesScanned, run.FilesSkipped, formatElapsed(run.Elapsed))))
	sb.WriteString("\n")
	fmt.Fprint(w, sb.String())
}

func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}

// jsonRun is the --json output shape.
type jsonRun struct {
	*ports.Run
	Results map[string][]string `json:"results"`
	Skipped []string            `json:"skipped,omitempty"`
}

func writeJSON(w io.Writer, run *ports.Run, skipped []string) error {
	results := search.Result(run.Result).Sorted()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonRun{Run: run, Results: results, Skipped: skipped})
}

// writeRunList renders saved runs newest first, one per line.
func writeRunList(w io.Writer, runs []*ports.Run, p palette) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "no saved runs")
		return
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s  %s  %s  %s %s\n",
			p.bold(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			p.file(r.Root),
			strings.Join(r.Keywords, ","),
			p.dim(fmt.Sprintf("(%d files, %s)", r.FilesScanned, formatElapsed(r.Elapsed))))
	}
}
