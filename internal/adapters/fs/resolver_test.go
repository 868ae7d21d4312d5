package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glaze/internal/adapters/fs"
	"go.trai.ch/glaze/internal/core/domain"
)

// touch creates the given files (and their parents) under root.
func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}
}

func TestResolver_Resolve(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"scss/main.scss",
		"scss/_vars.scss",
		"scss/pages/home-final.scss",
		"scss/readme.md",
	)

	matches, err := fs.NewResolver().Resolve(
		domain.NewPatternSet("scss/**/*.scss", "scss/**/*-final.scss"),
		root,
	)
	require.NoError(t, err)

	base := filepath.Join(root, "scss")
	assert.Equal(t, []domain.Match{
		{Path: filepath.Join(base, "_vars.scss"), Base: base},
		{Path: filepath.Join(base, "main.scss"), Base: base},
		{Path: filepath.Join(base, "pages", "home-final.scss"), Base: base},
	}, matches, "files matched by both patterns appear once")
}

func TestResolver_ResolveFirstPatternWinsBase(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "js/partials/_a.js")

	matches, err := fs.NewResolver().Resolve(
		domain.NewPatternSet("js/partials/*.js", "js/**/*.js"),
		root,
	)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, filepath.Join(root, "js", "partials"), matches[0].Base)
}

func TestResolver_ResolveNegation(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "js/_a.js", "js/vendor/_b.js")

	matches, err := fs.NewResolver().Resolve(
		domain.NewPatternSet("js/**/_*.js", "!js/vendor/**"),
		root,
	)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, filepath.Join(root, "js", "_a.js"), matches[0].Path)
}

func TestResolver_ResolveNoMatches(t *testing.T) {
	matches, err := fs.NewResolver().Resolve(domain.NewPatternSet("missing/**/*.scss"), t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolver_ResolveInvalidPattern(t *testing.T) {
	_, err := fs.NewResolver().Resolve(domain.NewPatternSet("scss/[a.scss"), t.TempDir())

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidPattern.Error())
}

func TestResolver_Matches(t *testing.T) {
	root := "/project"
	patterns := domain.NewPatternSet("js/**/_*.js", "!js/vendor/**")
	r := fs.NewResolver()

	assert.True(t, r.Matches(patterns, root, "/project/js/_a.js"))
	assert.True(t, r.Matches(patterns, root, "/project/js/deep/er/_b.js"))
	assert.False(t, r.Matches(patterns, root, "/project/js/a.js"))
	assert.False(t, r.Matches(patterns, root, "/project/js/vendor/_c.js"))
	assert.False(t, r.Matches(patterns, root, "/elsewhere/js/_a.js"))
}

func TestResolver_WatchRoots(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "scss/main.scss", "js/partials/_a.js")

	roots := fs.NewResolver().WatchRoots(
		domain.NewPatternSet("scss/**/*.scss", "scss/pages/*-final.scss", "js/partials/*.js", "!scss/vendor/**"),
		root,
	)

	assert.Equal(t, []string{
		filepath.Join(root, "js", "partials"),
		filepath.Join(root, "scss"),
	}, roots)
}

func TestResolver_WatchRootsDropsNestedPastSiblings(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a/b/c/x.scss", "a/b-c/y.scss")

	roots := fs.NewResolver().WatchRoots(
		domain.NewPatternSet("a/b/**/*.scss", "a/b-c/*.scss", "a/b/c/*.scss"),
		root,
	)

	assert.Equal(t, []string{
		filepath.Join(root, "a", "b"),
		filepath.Join(root, "a", "b-c"),
	}, roots)
}

func TestResolver_WatchRootsMissingBase(t *testing.T) {
	root := t.TempDir()

	roots := fs.NewResolver().WatchRoots(domain.NewPatternSet("not/yet/**/*.js"), root)

	assert.Equal(t, []string{root}, roots, "missing bases fall back to the closest existing directory")
}
