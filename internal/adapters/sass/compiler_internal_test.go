package sass

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/glaze/internal/core/domain"
)

func TestIncludePaths(t *testing.T) {
	base := filepath.Join("/project", "scss")

	t.Run("file at the glob base", func(t *testing.T) {
		file := &domain.File{Path: filepath.Join(base, "main.scss"), Base: base}
		assert.Equal(t, []string{base}, includePaths(file))
	})

	t.Run("nested file", func(t *testing.T) {
		file := &domain.File{Path: filepath.Join(base, "pages", "home.scss"), Base: base}
		assert.Equal(t, []string{filepath.Join(base, "pages"), base}, includePaths(file))
	})

	t.Run("no base", func(t *testing.T) {
		file := &domain.File{Path: filepath.Join(base, "main.scss")}
		assert.Equal(t, []string{base}, includePaths(file))
	})
}
