package output_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glaze/internal/ui/output"
	"go.trai.ch/glaze/internal/ui/style"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv(output.NoColorEnv, "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestColorProfile_Detected(t *testing.T) {
	t.Setenv(output.NoColorEnv, "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}

func TestPaint_NoColorIsPlain(t *testing.T) {
	t.Setenv(output.NoColorEnv, "1")
	out := output.New(&bytes.Buffer{})

	assert.Equal(t, "done", output.Paint(out, style.Foreground(style.Green), "done"))
}

func TestPaint_NonTerminalIsPlain(t *testing.T) {
	t.Setenv(output.NoColorEnv, "")
	out := output.New(&bytes.Buffer{})

	assert.Equal(t, "failed", output.Paint(out, style.Foreground(style.Red), "failed"))
}

func TestInteractive(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		t.Setenv(output.CIEnv, "")
		assert.False(t, output.Interactive(&bytes.Buffer{}))
	})

	t.Run("regular file", func(t *testing.T) {
		t.Setenv(output.CIEnv, "")
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.False(t, output.Interactive(f))
	})

	t.Run("ci", func(t *testing.T) {
		t.Setenv(output.CIEnv, "true")
		assert.False(t, output.Interactive(os.Stderr))
	})
}
