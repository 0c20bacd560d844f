package bmh

import "fmt"

// Pattern is an immutable search keyword together with its shift table.
type Pattern struct {
	text  []byte
	table ShiftTable
}

// NewPattern builds a Pattern for keyword. Returns ErrInvalidPattern for an
// empty keyword.
func NewPattern(keyword string) (*Pattern, error) {
	text := []byte(keyword)
	table, err := BuildShiftTable(text)
	if err != nil {
		return nil, err
	}
	return &Pattern{text: text, table: table}, nil
}

// CompileAll builds a Pattern for every keyword, failing on the first invalid one.
func CompileAll(keywords []string) ([]*Pattern, error) {
	patterns := make([]*Pattern, 0, len(keywords))
	for i, kw := range keywords {
		p, err := NewPattern(kw)
		if err != nil {
			return nil, fmt.Errorf("keyword %d: %w", i, err)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// String returns the keyword.
func (p *Pattern) String() string {
	return string(p.text)
}

// Len returns the keyword length in bytes.
func (p *Pattern) Len() int {
	return len(p.text)
}

// Table returns the pattern's shift table.
func (p *Pattern) Table() *ShiftTable {
	return &p.table
}

// Index returns the offset of the first occurrence of the pattern in buf,
// or -1 if there is none.
//
// The window is compared right to left. On a mismatch the window advances by
// the shift of the byte aligned with the pattern's last position, whatever
// position the mismatch happened at.
func (p *Pattern) Index(buf []byte) int {
	l := len(p.text)
	last := l - 1
	for i := 0; i <= len(buf)-l; {
		j := last
		for j >= 0 && buf[i+j] == p.text[j] {
			j--
		}
		if j < 0 {
			return i
		}
		i += p.table.Get(buf[i+last])
	}
	return -1
}

// Contains reports whether the pattern occurs anywhere in buf.
func (p *Pattern) Contains(buf []byte) bool {
	return p.Index(buf) >= 0
}
