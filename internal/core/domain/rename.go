package domain

import (
	"path/filepath"
	"strings"
)

// Rename rewrites the relative output path of a file.
// Empty fields leave the corresponding part of the path untouched.
type Rename struct {
	Dirname  string
	Prefix   string
	Basename string
	Suffix   string
	Extname  string
}

// IsZero reports whether the rename leaves paths unchanged.
func (r Rename) IsZero() bool {
	return r == Rename{}
}

// Apply returns rel with the rename applied.
// "_b.js" with Extname ".min.js" becomes "_b.min.js".
func (r Rename) Apply(rel string) string {
	if r.IsZero() {
		return rel
	}

	dir := filepath.Dir(rel)
	ext := filepath.Ext(rel)
	base := strings.TrimSuffix(filepath.Base(rel), ext)

	if r.Dirname != "" {
		dir = filepath.FromSlash(r.Dirname)
	}
	if r.Basename != "" {
		base = r.Basename
	}
	if r.Extname != "" {
		ext = r.Extname
	}

	return filepath.Join(dir, r.Prefix+base+r.Suffix+ext)
}
