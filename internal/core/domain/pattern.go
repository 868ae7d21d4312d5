package domain

import (
	"path/filepath"
	"strings"
)

// NegationPrefix marks a pattern that excludes files matched by the others.
const NegationPrefix = "!"

// PatternSet is an ordered list of glob expressions selecting input files.
// Patterns are evaluated against the file system on every run.
type PatternSet []string

// NewPatternSet creates a PatternSet from the given patterns.
func NewPatternSet(patterns ...string) PatternSet {
	return append(PatternSet(nil), patterns...)
}

// Positive returns the patterns that select files.
func (p PatternSet) Positive() []string {
	out := make([]string, 0, len(p))
	for _, pattern := range p {
		if !strings.HasPrefix(pattern, NegationPrefix) {
			out = append(out, pattern)
		}
	}
	return out
}

// Negated returns the patterns that exclude files, without their "!" prefix.
func (p PatternSet) Negated() []string {
	var out []string
	for _, pattern := range p {
		if rest, ok := strings.CutPrefix(pattern, NegationPrefix); ok {
			out = append(out, rest)
		}
	}
	return out
}

// Absolute returns a copy of the set with every relative pattern joined to root.
// Negation prefixes are preserved.
func (p PatternSet) Absolute(root string) PatternSet {
	out := make(PatternSet, len(p))
	for i, pattern := range p {
		prefix := ""
		if rest, ok := strings.CutPrefix(pattern, NegationPrefix); ok {
			prefix, pattern = NegationPrefix, rest
		}
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, pattern)
		}
		out[i] = prefix + filepath.ToSlash(pattern)
	}
	return out
}

// Match is a file selected by a PatternSet together with the glob base of
// the pattern that selected it.
type Match struct {
	Path string
	Base string
}
