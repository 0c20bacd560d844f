package search

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/corey/kwscan/internal/domain/bmh"
	"github.com/corey/kwscan/internal/domain/chunk"
	"github.com/corey/kwscan/internal/ports"
)

// Options configures a search run.
type Options struct {
	// Workers is the number of slices; 0 means runtime.NumCPU().
	Workers int
	// BufferSize is the per-read chunk size; 0 means chunk.DefaultBufferSize.
	BufferSize int
	// Logger receives progress and skipped-file messages; nil discards them.
	Logger ports.Logger
}

// Run searches files for every keyword and returns the merged report.
//
// Keywords are compiled before anything is spawned, so an empty keyword
// fails the whole run with bmh.ErrInvalidPattern. Per-file read errors are
// absorbed by the workers. Run returns once every worker has finished.
// The order of files within a keyword's list depends on worker completion
// order and is not stable across runs.
func Run(files, keywords []string, opts Options) (*Report, error) {
	patterns, err := bmh.CompileAll(keywords)
	if err != nil {
		return nil, err
	}
	patterns = dedupe(patterns)

	bufSize := opts.BufferSize
	if bufSize == 0 {
		bufSize = chunk.DefaultBufferSize
	}
	scanner, err := chunk.NewScanner(bufSize)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = noopLogger{}
	}

	workers := opts.Workers
	if workers < 0 {
		return nil, fmt.Errorf("worker count must be >= 0, got %d", workers)
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	report := &Report{Result: make(Result)}
	if len(files) == 0 {
		log.LogInfo("no files to search")
		return report, nil
	}

	slices := Partition(files, workers)
	log.LogInfo(fmt.Sprintf("searching %d files for %d keywords with %d workers", len(files), len(patterns), workers))

	// One message per spawned worker, so sends never block.
	results := make(chan Partial, len(slices))
	var wg sync.WaitGroup
	for i, slice := range slices {
		if len(slice) == 0 {
			continue
		}
		report.Workers++
		wg.Add(1)
		go func(id int, slice []string) {
			defer wg.Done()
			results <- NewWorker(id, scanner, patterns, log).Run(slice)
		}(i, slice)
	}

	wg.Wait()
	close(results)

	for part := range results {
		report.Result.Merge(part.Result)
		report.FilesScanned += part.Scanned
		report.Skipped = append(report.Skipped, part.Skipped...)
		report.Bytes += part.Bytes
	}
	return report, nil
}

// dedupe drops repeated keywords, keeping first-seen order, so a file is
// listed at most once per keyword.
func dedupe(patterns []*bmh.Pattern) []*bmh.Pattern {
	seen := make(map[string]bool, len(patterns))
	out := patterns[:0:0]
	for _, p := range patterns {
		if !seen[p.String()] {
			seen[p.String()] = true
			out = append(out, p)
		}
	}
	return out
}

// noopLogger mirrors logger.NoOp; domain packages do not import adapters.
type noopLogger struct{}

func (noopLogger) LogDebug(string) {}
func (noopLogger) LogInfo(string)  {}
func (noopLogger) LogWarn(string)  {}
func (noopLogger) LogError(string) {}
