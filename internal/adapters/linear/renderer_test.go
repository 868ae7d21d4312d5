package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/glaze/internal/adapters/linear"
)

func newTestRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return linear.NewRenderer(buf), buf
}

func TestRenderer_InterleavedRuns(t *testing.T) {
	r, buf := newTestRenderer(t)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	r.OnRunStart("span-styles", "styles", start)
	r.OnRunStart("span-scripts", "scripts", start.Add(5*time.Millisecond))
	r.OnRunComplete("span-scripts", start.Add(45*time.Millisecond), "1 written, 2 unchanged", nil)
	r.OnRunComplete("span-styles", start.Add(125*time.Millisecond+300*time.Microsecond), "2 written, 1 failed", errors.New("task run failed"))

	g := goldie.New(t)
	g.Assert(t, "interleaved_runs", buf.Bytes())
}

func TestRenderer_EmptySummary(t *testing.T) {
	r, buf := newTestRenderer(t)
	start := time.Now()

	r.OnRunStart("span", "styles", start)
	r.OnRunComplete("span", start, "", nil)

	g := goldie.New(t)
	g.Assert(t, "empty_summary", buf.Bytes())
}

func TestRenderer_UnknownSpan(t *testing.T) {
	r, buf := newTestRenderer(t)

	r.OnRunComplete("missing", time.Now(), "1 written", nil)

	assert.Empty(t, buf.String())
}
