// Package fs provides the file system adapters: glob resolution and output writing.
package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements ports.InputResolver using doublestar globs.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve expands the positive patterns, drops files matched by a negated
// pattern, and returns each remaining file once with the glob base of the
// first pattern that selected it.
func (r *Resolver) Resolve(patterns domain.PatternSet, root string) ([]domain.Match, error) {
	abs := patterns.Absolute(root)
	negated := abs.Negated()

	for _, pattern := range abs {
		if !doublestar.ValidatePattern(strings.TrimPrefix(pattern, domain.NegationPrefix)) {
			return nil, zerr.With(domain.ErrInvalidPattern, "pattern", pattern)
		}
	}

	seen := make(map[string]struct{})
	var matches []domain.Match

	for _, pattern := range abs.Positive() {
		base := globBase(pattern)

		paths, err := doublestar.FilepathGlob(filepath.FromSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInputResolutionFailed.Error()), "pattern", pattern)
		}

		for _, path := range paths {
			if _, dup := seen[path]; dup {
				continue
			}
			if matchesAny(negated, path) {
				continue
			}
			seen[path] = struct{}{}
			matches = append(matches, domain.Match{Path: path, Base: base})
		}
	}

	slices.SortFunc(matches, func(a, b domain.Match) int {
		return strings.Compare(a.Path, b.Path)
	})

	return matches, nil
}

// Matches reports whether path is selected by a positive pattern and not
// excluded by a negated one.
func (r *Resolver) Matches(patterns domain.PatternSet, root, path string) bool {
	abs := patterns.Absolute(root)
	path = filepath.Clean(path)

	return matchesAny(abs.Positive(), path) && !matchesAny(abs.Negated(), path)
}

// WatchRoots returns the glob bases of the positive patterns, each moved up to
// its closest existing directory. Roots nested inside another root are dropped.
func (r *Resolver) WatchRoots(patterns domain.PatternSet, root string) []string {
	var roots []string
	for _, pattern := range patterns.Absolute(root).Positive() {
		roots = append(roots, existingDir(globBase(pattern)))
	}

	slices.Sort(roots)
	roots = slices.Compact(roots)

	// Sorting puts a directory before its descendants, but siblings such as
	// "b-c" can sit between "b" and "b/c", so every kept root is checked.
	out := roots[:0]
	for _, candidate := range roots {
		covered := slices.ContainsFunc(out, func(kept string) bool {
			return isWithin(kept, candidate)
		})
		if !covered {
			out = append(out, candidate)
		}
	}
	return out
}

// globBase returns the leading directory of pattern that holds no glob
// metacharacters, in OS form.
func globBase(pattern string) string {
	base, _ := doublestar.SplitPattern(pattern)
	return filepath.Clean(filepath.FromSlash(base))
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.PathMatch(filepath.FromSlash(pattern), path); ok {
			return true
		}
	}
	return false
}

// existingDir walks up from dir until it finds a directory that exists.
func existingDir(dir string) string {
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

func isWithin(parent, child string) bool {
	if parent == child {
		return true
	}
	rel, err := filepath.Rel(parent, child)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
