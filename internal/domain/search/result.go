// Package search fans a file list out across concurrent workers, each
// scanning its slice for every keyword, and merges their partial results
// into one keyword -> files mapping.
package search

import "sort"

// Result maps a keyword to the files it was found in. Keywords that were
// never found have no entry; reading a missing keyword yields nil.
type Result map[string][]string

// Add appends file to keyword's list, creating the entry on first use.
func (r Result) Add(keyword, file string) {
	r[keyword] = append(r[keyword], file)
}

// Merge appends every list of other onto r key by key. Duplicates are kept.
func (r Result) Merge(other Result) {
	for kw, files := range other {
		if len(files) == 0 {
			continue
		}
		r[kw] = append(r[kw], files...)
	}
}

// Files returns the files recorded for keyword.
func (r Result) Files(keyword string) []string {
	return r[keyword]
}

// Keywords returns the keywords with at least one file, sorted.
func (r Result) Keywords() []string {
	keys := make([]string, 0, len(r))
	for kw, files := range r {
		if len(files) > 0 {
			keys = append(keys, kw)
		}
	}
	sort.Strings(keys)
	return keys
}

// Sorted returns a copy of r with every file list sorted, for stable display.
func (r Result) Sorted() Result {
	out := make(Result, len(r))
	for kw, files := range r {
		cp := append([]string(nil), files...)
		sort.Strings(cp)
		out[kw] = cp
	}
	return out
}

// Partial is what one worker reports for its slice of the file list.
type Partial struct {
	Worker  int
	Result  Result
	Scanned int
	Skipped []string
	Bytes   int64
}

// Report is the merged outcome of a whole search.
type Report struct {
	Result       Result
	Workers      int
	FilesScanned int
	Skipped      []string
	Bytes        int64
}
