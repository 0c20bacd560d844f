// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "time"

// RunStore persists completed search runs.
// The backing store (bbolt) keeps run metadata and result mappings in
// separate buckets. Concurrent reads are safe; writes are serialized by the
// adapter.
//
// Crash safety: SaveRun must be transactional. A crash mid-write must not
// leave a run with metadata but no result.
type RunStore interface {
	// SaveRun persists a run, overwriting any prior run with the same ID.
	SaveRun(run *Run) error

	// LoadRun retrieves a run including its result.
	// Returns nil, nil if no run has this ID.
	LoadRun(id string) (*Run, error)

	// ListRuns returns every run newest first, without results.
	ListRuns() ([]*Run, error)

	// DeleteRun removes a run and its result.
	// Idempotent: deleting a nonexistent run is not an error.
	DeleteRun(id string) error
}

// Run is one completed search over a corpus.
type Run struct {
	ID           string              `json:"id"`
	Root         string              `json:"root"`
	Extension    string              `json:"extension"`
	Keywords     []string            `json:"keywords"`
	Workers      int                 `json:"workers"`
	BufferSize   int                 `json:"buffer_size"`
	FilesScanned int                 `json:"files_scanned"`
	FilesSkipped int                 `json:"files_skipped"`
	Bytes        int64               `json:"bytes"`
	StartedAt    time.Time           `json:"started_at"`
	Elapsed      time.Duration       `json:"elapsed"`
	Result       map[string][]string `json:"-"` // stored in its own bucket
}
