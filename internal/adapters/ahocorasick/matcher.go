// Package ahocorasick finds which of a set of keywords occur in content using
// one Aho-Corasick automaton. It wraps the petar-dambovaliev/aho-corasick
// library and serves as an independent reference for keyword presence: every
// keyword is checked in a single pass, unlike the per-keyword search engine.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Matcher reports keyword presence over whole contents.
type Matcher struct {
	automaton aho.AhoCorasick
	keywords  []string
}

// NewMatcher compiles an automaton for keywords. Matching is case-sensitive
// and overlapping, so "log" and "login" both match "login".
func NewMatcher(keywords []string) *Matcher {
	kw := make([]string, len(keywords))
	copy(kw, keywords)

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return &Matcher{
		automaton: builder.Build(kw),
		keywords:  kw,
	}
}

// Present returns the keywords occurring in content, in keyword order.
func (m *Matcher) Present(content []byte) []string {
	if len(m.keywords) == 0 {
		return nil
	}
	seen := make([]bool, len(m.keywords))
	iter := m.automaton.IterOverlappingByte(content)
	for next := iter.Next(); next != nil; next = iter.Next() {
		seen[(*next).Pattern()] = true
	}

	var out []string
	for i, ok := range seen {
		if ok {
			out = append(out, m.keywords[i])
		}
	}
	return out
}

// Index builds the keyword -> files mapping for a set of in-memory files.
// Keywords absent from every file have no entry.
func (m *Matcher) Index(files map[string][]byte) map[string][]string {
	out := make(map[string][]string)
	for path, content := range files {
		for _, kw := range m.Present(content) {
			out[kw] = append(out[kw], path)
		}
	}
	return out
}
