// Package bbolt implements the ports.RunStore interface using bbolt (embedded B+ tree).
// The "runs" bucket holds JSON run metadata keyed by run ID; the "results"
// bucket holds each run's keyword -> files mapping in binary form under the
// same key. Both are written in one transaction, so a crash mid-write cannot
// leave a run without its result.
package bbolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/corey/kwscan/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketRuns    = []byte("runs")
	bucketResults = []byte("results")
)

// Store implements ports.RunStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists a run and its result.
func (s *Store) SaveRun(run *ports.Run) error {
	if run == nil {
		return fmt.Errorf("nil run")
	}
	if run.ID == "" {
		return fmt.Errorf("run has no id")
	}

	meta, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	result, err := encodeResult(run.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	key := []byte(run.ID)
	return s.db.Update(func(tx *bolt.Tx) error {
		rb, err := tx.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		resb, err := tx.CreateBucketIfNotExists(bucketResults)
		if err != nil {
			return err
		}
		if err := rb.Put(key, meta); err != nil {
			return err
		}
		return resb.Put(key, result)
	})
}

// LoadRun retrieves a run including its result.
// Returns nil, nil if no run has this ID.
func (s *Store) LoadRun(id string) (*ports.Run, error) {
	var meta, result []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		rb := tx.Bucket(bucketRuns)
		if rb == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := rb.Get([]byte(id)); v != nil {
			meta = append([]byte(nil), v...)
		}
		if resb := tx.Bucket(bucketResults); resb != nil {
			if v := resb.Get([]byte(id)); v != nil {
				result = append([]byte(nil), v...)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, nil
	}

	var run ports.Run
	if err := json.Unmarshal(meta, &run); err != nil {
		return nil, fmt.Errorf("unmarshal run %s: %w", id, err)
	}
	run.Result = map[string][]string{}
	if result != nil {
		decoded, err := decodeResult(result)
		if err != nil {
			return nil, fmt.Errorf("decode result %s: %w", id, err)
		}
		run.Result = decoded
	}
	return &run, nil
}

// ListRuns returns every run newest first, without results.
func (s *Store) ListRuns() ([]*ports.Run, error) {
	var runs []*ports.Run
	err := s.db.View(func(tx *bolt.Tx) error {
		rb := tx.Bucket(bucketRuns)
		if rb == nil {
			return nil
		}
		return rb.ForEach(func(k, v []byte) error {
			var run ports.Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("unmarshal run %s: %w", k, err)
			}
			runs = append(runs, &run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs, nil
}

// DeleteRun removes a run and its result.
// Idempotent: deleting a nonexistent run is not an error.
func (s *Store) DeleteRun(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketRuns, bucketResults} {
			b := tx.Bucket(name)
			if b == nil {
				continue
			}
			if err := b.Delete([]byte(id)); err != nil {
				return err
			}
		}
		return nil
	})
}
