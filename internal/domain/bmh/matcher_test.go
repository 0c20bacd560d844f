package bmh

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_Contains(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		{"middle", "book", "the book is here", true},
		{"prefix", "the", "the book", true},
		{"suffix", "here", "the book is here", true},
		{"whole buffer", "summer", "summer", true},
		{"absent", "life", "summer is great", false},
		{"shorter buffer", "summer", "sum", false},
		{"empty buffer", "a", "", false},
		{"case sensitive", "Book", "the book", false},
		{"repeated chars", "level", "levlevel", true},
		{"overlap near miss", "abab", "abaabab", true},
		{"utf8", "життя", "це моє життя", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Contains([]byte(tt.text)))
		})
	}
}

func TestPattern_IndexIsLeftmost(t *testing.T) {
	p, err := NewPattern("ab")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Index([]byte("xxabxxab")))
	assert.Equal(t, -1, p.Index([]byte("xxxxx")))
}

func TestPattern_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 5000; n++ {
		pattern := randomBytes(rng, 1+rng.Intn(6), "abc")
		buf := randomBytes(rng, rng.Intn(64), "abc")

		p, err := NewPattern(string(pattern))
		require.NoError(t, err)

		assert.Equal(t, bytes.Index(buf, pattern), p.Index(buf),
			"pattern %q in %q", pattern, buf)
	}
}

func TestCompileAll(t *testing.T) {
	patterns, err := CompileAll([]string{"book", "summer"})
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "book", patterns[0].String())
	assert.Equal(t, 6, patterns[1].Len())

	_, err = CompileAll([]string{"book", ""})
	assert.ErrorIs(t, err, ErrInvalidPattern)
}
