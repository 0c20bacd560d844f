// Package bmh implements single-pattern substring search using the
// bad-character rule of Boyer-Moore-Horspool. A Pattern carries its shift
// table and is safe to share across goroutines once built.
package bmh

import "errors"

// ErrInvalidPattern is returned when a pattern is empty.
var ErrInvalidPattern = errors.New("invalid pattern: empty")

// ShiftTable maps a byte to the distance the search window may move when
// that byte sits under the pattern's last position. Bytes absent from the
// pattern shift by the full pattern length.
type ShiftTable struct {
	shifts  [256]int
	present [256]bool
	length  int
}

// BuildShiftTable precomputes the shift table for pattern.
//
// Every byte before the final position gets L-i-1, later occurrences
// overwriting earlier ones. The final byte gets L only when it does not
// already occur earlier in the pattern.
func BuildShiftTable(pattern []byte) (ShiftTable, error) {
	var t ShiftTable
	l := len(pattern)
	if l == 0 {
		return t, ErrInvalidPattern
	}
	t.length = l
	for i := 0; i < l-1; i++ {
		c := pattern[i]
		t.shifts[c] = l - i - 1
		t.present[c] = true
	}
	last := pattern[l-1]
	if !t.present[last] {
		t.shifts[last] = l
		t.present[last] = true
	}
	return t, nil
}

// Get returns the shift for c, falling back to the pattern length.
func (t *ShiftTable) Get(c byte) int {
	if t.present[c] {
		return t.shifts[c]
	}
	return t.length
}

// Lookup returns the shift for c and whether c is a key of the table.
func (t *ShiftTable) Lookup(c byte) (int, bool) {
	return t.shifts[c], t.present[c]
}

// Keys returns the distinct bytes of the pattern in ascending order.
func (t *ShiftTable) Keys() []byte {
	var keys []byte
	for c := 0; c < 256; c++ {
		if t.present[c] {
			keys = append(keys, byte(c))
		}
	}
	return keys
}

// Len returns the length of the pattern the table was built for.
func (t *ShiftTable) Len() int {
	return t.length
}
