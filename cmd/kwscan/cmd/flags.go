package cmd

import (
	"github.com/corey/kwscan/internal/app"
	"github.com/spf13/cobra"
)

// scanFlags are the corpus and engine flags shared by search and watch.
type scanFlags struct {
	keywords  []string
	extension string
	workers   int
	bufSize   int
	recursive bool
}

func (s *scanFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceVarP(&s.keywords, "keyword", "k", nil, "Keywords to search for (comma-separated or repeated)")
	f.StringVarP(&s.extension, "ext", "e", "", "File extension filter (default .txt)")
	f.IntVarP(&s.workers, "workers", "w", 0, "Number of parallel workers (0 = number of CPUs)")
	f.IntVarP(&s.bufSize, "buffer-size", "b", 0, "Chunk read size in bytes (default 4096)")
	f.BoolVarP(&s.recursive, "recursive", "r", false, "Recurse into subdirectories")
}

// overrides returns only the flags set on the command line. The optional
// positional argument is the corpus directory.
func (s *scanFlags) overrides(cmd *cobra.Command, args []string) app.Overrides {
	var o app.Overrides
	f := cmd.Flags()
	if len(args) > 0 {
		o.Root = &args[0]
	}
	if f.Changed("keyword") {
		o.Keywords = append([]string{}, s.keywords...)
	}
	if f.Changed("ext") {
		o.Extension = &s.extension
	}
	if f.Changed("workers") {
		o.Workers = &s.workers
	}
	if f.Changed("buffer-size") {
		o.BufferSize = &s.bufSize
	}
	if f.Changed("recursive") {
		o.Recursive = &s.recursive
	}
	return o
}
