package ports

import (
	"context"

	"go.trai.ch/glaze/internal/core/domain"
)

//go:generate mockgen -source=transformer.go -destination=mocks/mock_transformer.go -package=mocks

// StyleCompiler compiles a style sheet to compressed CSS.
type StyleCompiler interface {
	// Compile returns the compiled CSS for file.
	Compile(ctx context.Context, file *domain.File) ([]byte, error)
}

// ScriptMinifier minifies a script.
type ScriptMinifier interface {
	// Minify returns the minified contents of file.
	Minify(ctx context.Context, file *domain.File) ([]byte, error)
}
