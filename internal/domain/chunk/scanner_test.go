package chunk

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/corey/kwscan/internal/domain/bmh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Chunked scanner: bounded-buffer reads with carry-over between windows
// Expectation: same answer for every buffer size, occurrences straddling a
// read boundary are found, read failures classify as ErrFileUnreadable.
// =============================================================================

func mustPattern(t *testing.T, kw string) *bmh.Pattern {
	t.Helper()
	p, err := bmh.NewPattern(kw)
	require.NoError(t, err)
	return p
}

func mustScanner(t *testing.T, size int) *Scanner {
	t.Helper()
	s, err := NewScanner(size)
	require.NoError(t, err)
	return s
}

func TestNewScanner_RejectsNonPositive(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := NewScanner(size)
		assert.ErrorIs(t, err, ErrInvalidBufferSize)
	}
}

func TestScan_PatternSpanningBoundary(t *testing.T) {
	// Buffer 8, pattern length 5 written at offset 6: bytes 6-7 land in the
	// first read and 8-10 in the second.
	content := "xxxxxxhelloxxxxx"
	s := mustScanner(t, 8)

	found, err := s.Scan(strings.NewReader(content), mustPattern(t, "hello"))
	require.NoError(t, err)
	assert.True(t, found)
}

func TestScan_OneByteReaderStillSpans(t *testing.T) {
	// OneByteReader forces ReadFull to assemble each chunk from many reads.
	content := "aaaaaaaneedleaaaa"
	s := mustScanner(t, 4)

	found, err := s.Scan(iotest.OneByteReader(strings.NewReader(content)), mustPattern(t, "needle"))
	require.NoError(t, err)
	assert.True(t, found)
}

func TestScan_BufferSmallerThanPattern(t *testing.T) {
	s := mustScanner(t, 1)
	found, err := s.Scan(strings.NewReader("the summer is great"), mustPattern(t, "summer"))
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.Scan(strings.NewReader("the summ er"), mustPattern(t, "summer"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestScan_ShortAndEmptyInput(t *testing.T) {
	s := mustScanner(t, 16)
	p := mustPattern(t, "summer")

	found, err := s.Scan(strings.NewReader(""), p)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = s.Scan(strings.NewReader("sum"), p)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestScan_ExactMultipleOfBuffer(t *testing.T) {
	s := mustScanner(t, 4)
	found, err := s.Scan(strings.NewReader("abcdefgh"), mustPattern(t, "efgh"))
	require.NoError(t, err)
	assert.True(t, found)
}

func TestScanAll_BufferSizeInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const alphabet = "abc"

	for n := 0; n < 300; n++ {
		content := make([]byte, rng.Intn(200))
		for i := range content {
			content[i] = alphabet[rng.Intn(len(alphabet))]
		}

		var keywords []string
		var patterns []*bmh.Pattern
		for k := 0; k < 1+rng.Intn(4); k++ {
			kw := make([]byte, 1+rng.Intn(6))
			for i := range kw {
				kw[i] = alphabet[rng.Intn(len(alphabet))]
			}
			keywords = append(keywords, string(kw))
			patterns = append(patterns, mustPattern(t, string(kw)))
		}

		want := make([]bool, len(keywords))
		for i, kw := range keywords {
			want[i] = bytes.Contains(content, []byte(kw))
		}

		for _, size := range []int{1, 2, 3, 5, 8, 13, 64, 4096} {
			got, read, err := mustScanner(t, size).ScanAll(bytes.NewReader(content), patterns)
			require.NoError(t, err)
			assert.Equal(t, want, got, "buffer %d keywords %q content %q", size, keywords, content)
			assert.LessOrEqual(t, read, int64(len(content)))
		}
	}
}

func TestScanAll_StopsWhenAllFound(t *testing.T) {
	content := "book" + strings.Repeat("z", 10000)
	r := &countingReader{r: strings.NewReader(content)}

	found, read, err := mustScanner(t, 8).ScanAll(r, []*bmh.Pattern{mustPattern(t, "book")})
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, found)
	assert.Equal(t, int64(8), read)
	assert.Equal(t, 8, r.n)
}

func TestScanAll_NoPatterns(t *testing.T) {
	found, read, err := mustScanner(t, 8).ScanAll(strings.NewReader("abc"), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Zero(t, read)
}

func TestScanAll_ReadErrorMidStream(t *testing.T) {
	boom := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("0123456789"), iotest.ErrReader(boom))

	_, _, err := mustScanner(t, 4).ScanAll(r, []*bmh.Pattern{mustPattern(t, "zz")})
	assert.ErrorIs(t, err, boom)
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("the book is here"), 0o644))

	s := mustScanner(t, 4)
	found, read, err := s.ScanFile(path, []*bmh.Pattern{mustPattern(t, "book"), mustPattern(t, "life")})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, found)
	assert.Equal(t, int64(16), read)
}

func TestScanFile_Missing(t *testing.T) {
	s := mustScanner(t, 4)
	path := filepath.Join(t.TempDir(), "missing.txt")

	found, _, err := s.ScanFile(path, []*bmh.Pattern{mustPattern(t, "book")})
	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, ErrFileUnreadable)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var re *ReadError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "open", re.Op)
	assert.Equal(t, path, re.Path)
}

func TestScanFile_Directory(t *testing.T) {
	// Opening a directory succeeds on unix but reading it fails.
	s := mustScanner(t, 4)
	_, _, err := s.ScanFile(t.TempDir(), []*bmh.Pattern{mustPattern(t, "book")})
	assert.ErrorIs(t, err, ErrFileUnreadable)
}

type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}
