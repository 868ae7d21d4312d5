// Package esbuild minifies scripts with the esbuild transform API.
package esbuild

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScriptMinifier = (*Minifier)(nil)

// Minifier implements ports.ScriptMinifier.
type Minifier struct {
	// Target is the language level of the output.
	Target api.Target
}

// NewMinifier creates a Minifier targeting ES2015, the level uglify-js accepts.
func NewMinifier() *Minifier {
	return &Minifier{Target: api.ES2015}
}

// Minify strips whitespace, renames local identifiers and folds syntax.
// Any esbuild error fails the file; warnings are ignored.
func (m *Minifier) Minify(ctx context.Context, file *domain.File) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := api.Transform(string(file.Contents), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            m.Target,
		Sourcefile:        filepath.Base(file.Path),
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
	})

	if len(result.Errors) > 0 {
		err := zerr.Wrap(zerr.New(formatMessages(result.Errors)), domain.ErrScriptMinifyFailed.Error())
		return nil, zerr.With(err, "file", file.Path)
	}

	return result.Code, nil
}

func formatMessages(msgs []api.Message) string {
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		if msg.Location == nil {
			lines = append(lines, msg.Text)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text))
	}
	return strings.Join(lines, "\n")
}
