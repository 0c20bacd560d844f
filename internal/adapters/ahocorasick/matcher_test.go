package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_SingleKeyword(t *testing.T) {
	m := NewMatcher([]string{"book"})
	assert.Equal(t, []string{"book"}, m.Present([]byte("the book is here")))
}

func TestMatcher_MultipleKeywords(t *testing.T) {
	m := NewMatcher([]string{"book", "summer", "life"})
	assert.Equal(t, []string{"book", "summer"}, m.Present([]byte("a summer book")))
}

func TestMatcher_OverlappingKeywords(t *testing.T) {
	m := NewMatcher([]string{"log", "login"})
	assert.Equal(t, []string{"log", "login"}, m.Present([]byte("login page")))
}

func TestMatcher_NoMatch(t *testing.T) {
	m := NewMatcher([]string{"auth"})
	assert.Empty(t, m.Present([]byte("hello world")))
}

func TestMatcher_CaseSensitive(t *testing.T) {
	m := NewMatcher([]string{"login"})
	assert.Empty(t, m.Present([]byte("Login")))
}

func TestMatcher_Index(t *testing.T) {
	m := NewMatcher([]string{"book", "summer", "life"})
	got := m.Index(map[string][]byte{
		"a.txt": []byte("the book is here"),
		"b.txt": []byte("summer is great"),
	})
	assert.Equal(t, map[string][]string{"book": {"a.txt"}, "summer": {"b.txt"}}, got)
}
