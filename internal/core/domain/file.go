package domain

import (
	"path/filepath"
	"strings"
)

// File is a source file flowing through a transform chain.
type File struct {
	// Path is the absolute path of the source file.
	Path string
	// Base is the glob base the file was matched under.
	Base string
	// Contents holds the file bytes.
	Contents []byte
}

// Relative returns the path of the file relative to its glob base.
// It falls back to the file name when the path is not below the base.
func (f *File) Relative() string {
	rel, err := filepath.Rel(f.Base, f.Path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(f.Path)
	}
	return rel
}

// IsPartial reports whether the file is a style partial (name starting with "_").
func (f *File) IsPartial() bool {
	return strings.HasPrefix(filepath.Base(f.Path), PartialPrefix)
}

// ReplaceExt swaps the extension of path for ext.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
