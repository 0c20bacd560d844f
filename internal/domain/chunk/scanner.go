// Package chunk scans files for keywords through a bounded read buffer.
//
// Each read is scanned together with the trailing max(L)-1 bytes of the
// previous window, so an occurrence that straddles two reads is always fully
// contained in one window. The answer does not depend on the buffer size.
package chunk

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/corey/kwscan/internal/domain/bmh"
)

// DefaultBufferSize is the read size used when none is configured.
const DefaultBufferSize = 4096

var (
	// ErrFileUnreadable classifies every open or read failure.
	ErrFileUnreadable = errors.New("file unreadable")
	// ErrInvalidBufferSize is returned for a buffer size <= 0.
	ErrInvalidBufferSize = errors.New("buffer size must be > 0")
)

// ReadError records which file failed and during which operation.
// It matches ErrFileUnreadable under errors.Is.
type ReadError struct {
	Path string
	Op   string // "open" or "read"
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFileUnreadable) succeed for any ReadError.
func (e *ReadError) Is(target error) bool {
	return target == ErrFileUnreadable
}

// Scanner reads through a fixed-size buffer window. A Scanner holds no
// per-scan state and may be shared between goroutines.
type Scanner struct {
	bufSize int
}

// NewScanner returns a Scanner reading bufSize bytes at a time.
func NewScanner(bufSize int) (*Scanner, error) {
	if bufSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBufferSize, bufSize)
	}
	return &Scanner{bufSize: bufSize}, nil
}

// BufferSize returns the configured read size.
func (s *Scanner) BufferSize() int {
	return s.bufSize
}

// Scan reports whether p occurs anywhere in r.
func (s *Scanner) Scan(r io.Reader, p *bmh.Pattern) (bool, error) {
	found, _, err := s.ScanAll(r, []*bmh.Pattern{p})
	if err != nil {
		return false, err
	}
	return found[0], nil
}

// ScanAll reads r once and reports, per pattern, whether it occurs. It also
// returns the number of bytes read. Reading stops early once every pattern
// has been found. Read failures are returned unwrapped; ScanFile classifies
// them.
func (s *Scanner) ScanAll(r io.Reader, patterns []*bmh.Pattern) ([]bool, int64, error) {
	found := make([]bool, len(patterns))
	if len(patterns) == 0 {
		return found, 0, nil
	}

	maxLen := 0
	for _, p := range patterns {
		maxLen = max(maxLen, p.Len())
	}
	keep := maxLen - 1

	// window = carry-over (up to keep bytes) + one chunk
	buf := make([]byte, keep+s.bufSize)
	carry := 0
	remaining := len(patterns)
	var total int64

	for {
		n, err := io.ReadFull(r, buf[carry:carry+s.bufSize])
		total += int64(n)
		eof := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
		if err != nil && !eof {
			return found, total, err
		}

		window := buf[:carry+n]
		if n > 0 {
			for i, p := range patterns {
				if found[i] || len(window) < p.Len() {
					continue
				}
				if p.Contains(window) {
					found[i] = true
					remaining--
				}
			}
		}
		if remaining == 0 || eof {
			return found, total, nil
		}

		// Retain the tail of this window as the next window's prefix.
		tail := min(keep, len(window))
		copy(buf, window[len(window)-tail:])
		carry = tail
	}
}

// ScanFile opens path and runs ScanAll over it. Every failure is a
// *ReadError matching ErrFileUnreadable.
func (s *Scanner) ScanFile(path string, patterns []*bmh.Pattern) ([]bool, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, &ReadError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	found, n, err := s.ScanAll(f, patterns)
	if err != nil {
		return nil, n, &ReadError{Path: path, Op: "read", Err: err}
	}
	return found, n, nil
}
