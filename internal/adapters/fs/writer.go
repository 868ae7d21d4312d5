package fs

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem reads sources and writes outputs atomically.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// ReadFile reads the entire file at path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the resolver
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}

// WriteFile writes data to path unless path already holds the same bytes.
// With opts.Precompress a brotli sidecar is kept next to the output.
func (f *FileSystem) WriteFile(path string, data []byte, opts ports.WriteOptions) (domain.Outcome, error) {
	sidecar := path + domain.PrecompressExt

	if f.unchanged(path, data) && (!opts.Precompress || fileExists(sidecar)) {
		return domain.OutcomeUnchanged, nil
	}

	if err := writeAtomic(path, data); err != nil {
		return domain.OutcomeFailed, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}

	if opts.Precompress {
		compressed, err := compress(data)
		if err == nil {
			err = writeAtomic(sidecar, compressed)
		}
		if err != nil {
			return domain.OutcomeFailed, zerr.With(zerr.Wrap(err, domain.ErrPrecompressFailed.Error()), "path", sidecar)
		}
	}

	return domain.OutcomeWritten, nil
}

// unchanged compares the xxhash digest of the file at path with that of data.
func (f *FileSystem) unchanged(path string, data []byte) bool {
	existing, err := ComputeFileHash(path)
	if err != nil {
		return false
	}
	return existing == xxhash.Sum64(data)
}

// ComputeFileHash computes the xxhash digest of a file's content.
func ComputeFileHash(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partial output.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write(data); err != nil {
		return nil, errors.Join(err, w.Close())
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
