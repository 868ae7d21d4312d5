package ports

import "go.trai.ch/glaze/internal/core/domain"

// WriteOptions controls how an output file is written.
type WriteOptions struct {
	// Precompress also writes a brotli sidecar next to the output.
	Precompress bool
}

// FileSystem reads sources and writes outputs.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ReadFile reads the entire source file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path atomically. It returns OutcomeUnchanged
	// when path already holds identical bytes and OutcomeWritten otherwise.
	WriteFile(path string, data []byte, opts WriteOptions) (domain.Outcome, error)
}
