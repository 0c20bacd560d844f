package search

import (
	"errors"
	"fmt"

	"github.com/corey/kwscan/internal/domain/bmh"
	"github.com/corey/kwscan/internal/domain/chunk"
	"github.com/corey/kwscan/internal/ports"
)

// Worker scans one slice of the file list for every pattern. Unreadable
// files are logged and skipped; they never abort the slice.
type Worker struct {
	id       int
	scanner  *chunk.Scanner
	patterns []*bmh.Pattern
	log      ports.Logger
}

// NewWorker creates a worker with the given id, used only in log lines.
func NewWorker(id int, scanner *chunk.Scanner, patterns []*bmh.Pattern, log ports.Logger) *Worker {
	return &Worker{id: id, scanner: scanner, patterns: patterns, log: log}
}

// Run scans files in order and returns the partial result for the slice.
// A file contributes at most one entry per keyword.
func (w *Worker) Run(files []string) Partial {
	part := Partial{Worker: w.id, Result: make(Result)}
	w.log.LogDebug(fmt.Sprintf("worker %d: %d files", w.id, len(files)))

	for _, path := range files {
		found, n, err := w.scanner.ScanFile(path, w.patterns)
		part.Bytes += n
		if err != nil {
			if errors.Is(err, chunk.ErrFileUnreadable) {
				w.log.LogWarn(fmt.Sprintf("worker %d: skipping %v", w.id, err))
			} else {
				w.log.LogError(fmt.Sprintf("worker %d: skipping %s: %v", w.id, path, err))
			}
			part.Skipped = append(part.Skipped, path)
			continue
		}

		part.Scanned++
		w.log.LogDebug(fmt.Sprintf("worker %d: scanned %s", w.id, path))
		for i, ok := range found {
			if ok {
				part.Result.Add(w.patterns[i].String(), path)
			}
		}
	}
	return part
}
