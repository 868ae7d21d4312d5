// Package sass compiles SCSS to compressed CSS with libsass.
package sass

import (
	"context"
	"path/filepath"

	"github.com/bep/golibsass/libsass"
	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StyleCompiler = (*Compiler)(nil)

// Compiler implements ports.StyleCompiler.
type Compiler struct{}

// NewCompiler creates a Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile transpiles file with the compressed output style. The directory of
// the file and its glob base are include paths, so partials resolve either
// next to the importer or from the source root.
func (c *Compiler) Compile(ctx context.Context, file *domain.File) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	transpiler, err := libsass.New(libsass.Options{
		IncludePaths: includePaths(file),
		OutputStyle:  libsass.CompressedStyle,
		SassSyntax:   filepath.Ext(file.Path) == ".sass",
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStyleCompileFailed.Error())
	}

	result, err := transpiler.Execute(string(file.Contents))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStyleCompileFailed.Error()), "file", file.Path)
	}

	return []byte(result.CSS), nil
}

func includePaths(file *domain.File) []string {
	paths := []string{filepath.Dir(file.Path)}
	if file.Base != "" && file.Base != paths[0] {
		paths = append(paths, file.Base)
	}
	return paths
}
